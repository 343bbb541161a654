package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"chat-assistant-api/internal/services"
	"chat-assistant-api/pkg/lambda"
)

// SessionHandler lists the caller's chat sessions
type SessionHandler struct {
	chatService services.ChatService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(chatService services.ChatService) *SessionHandler {
	return &SessionHandler{
		chatService: chatService,
	}
}

// HandleList returns every session stored under the caller's subject claim.
// Errors are returned as-is; the runtime decides what the caller sees.
//
// @Summary List sessions
// @Description List the chat sessions owned by the authenticated caller
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} object
// @Router /sessions [get]
func (h *SessionHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	logrus.WithFields(req.LogFields()).Info("Incoming request")

	userID, err := req.Subject()
	if err != nil {
		return nil, err
	}

	items, err := h.chatService.ListSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return jsonResponse(http.StatusOK, corsHeaders(), items)
}
