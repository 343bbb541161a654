package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/services"
	"chat-assistant-api/pkg/lambda"
)

// KnowledgeHandler answers prompts from the knowledge base and records the exchange
type KnowledgeHandler struct {
	chatService services.ChatService
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(chatService services.ChatService) *KnowledgeHandler {
	return &KnowledgeHandler{
		chatService: chatService,
	}
}

// @Summary Ask the knowledge base
// @Description Send a prompt within a session and receive the generated answer
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param prompt body models.PromptRequest true "Prompt"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chat [post]
func (h *KnowledgeHandler) HandlePrompt(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	userID, ok := req.Claim("sub")
	if !ok {
		userID = models.DefaultUserID
	}

	prompt, err := decodePrompt(req)
	if err != nil {
		return h.internalError(req, err)
	}

	answer, err := h.chatService.SendPrompt(ctx, userID, prompt)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			// No CORS headers on this path
			return jsonResponse(http.StatusBadRequest, nil, ErrorResponse{
				Error: "prompt and sessionId required",
			})
		}
		return h.internalError(req, err)
	}

	return jsonResponse(http.StatusOK, corsHeaders(), AnswerResponse{Response: answer})
}

func (h *KnowledgeHandler) internalError(req *lambda.Request, err error) (*lambda.Response, error) {
	logrus.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"error":      err.Error(),
	}).Error("Chat request failed")

	return jsonResponse(http.StatusInternalServerError, corsHeaders(), ErrorResponse{
		Error: err.Error(),
	})
}

// decodePrompt parses the body; an absent body counts as an empty object
func decodePrompt(req *lambda.Request) (*models.PromptRequest, error) {
	raw, err := req.DecodedBody()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var prompt models.PromptRequest
	if err := json.Unmarshal(raw, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}
