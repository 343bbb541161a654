package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"chat-assistant-api/internal/services"
	"chat-assistant-api/pkg/lambda"
)

// MessageHandler returns the history of one chat session
type MessageHandler struct {
	chatService services.ChatService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(chatService services.ChatService) *MessageHandler {
	return &MessageHandler{
		chatService: chatService,
	}
}

// @Summary List messages
// @Description Get a session's messages, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param sessionId query string true "Session ID"
// @Success 200 {array} models.MessageView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if _, err := req.Subject(); err != nil {
		return jsonResponse(http.StatusUnauthorized, corsHeaders(), ErrorResponse{
			Error: "Unauthorized - missing Cognito claims",
		})
	}

	views, err := h.chatService.ListMessages(ctx, req.QueryParams["sessionId"])
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return jsonResponse(http.StatusBadRequest, corsHeaders(), ErrorResponse{
				Error: "sessionId is required",
			})
		}

		logrus.WithFields(logrus.Fields{
			"request_id": req.RequestID,
			"error":      err.Error(),
		}).Error("DynamoDB query error")

		return jsonResponse(http.StatusInternalServerError, corsHeaders(), ErrorResponse{
			Error: "Failed to query messages",
		})
	}

	return jsonResponse(http.StatusOK, corsHeaders(), views)
}
