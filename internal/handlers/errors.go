package handlers

// ErrorResponse is the error body used by the chat endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the error body used by the login endpoint
type MessageResponse struct {
	Message string `json:"message"`
}

// AnswerResponse is the chat endpoint's success body
type AnswerResponse struct {
	Response string `json:"response"`
}
