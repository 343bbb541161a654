package handlers

import (
	"encoding/json"

	"chat-assistant-api/pkg/lambda"
)

const (
	headerContentType  = "Content-Type"
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerAllowMethods = "Access-Control-Allow-Methods"

	contentTypeJSON = "application/json"
)

// corsHeaders is the header set carried by every chat response
func corsHeaders() map[string]string {
	return map[string]string{
		headerAllowOrigin: "*",
	}
}

// jsonResponse marshals body into a response with the given status and headers
func jsonResponse(status int, headers map[string]string, body interface{}) (*lambda.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    headers,
		Body:       data,
	}, nil
}
