package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"
)

// FallbackAnswer replaces the assistant reply when the knowledge base fails
const FallbackAnswer = "⚠️ Bedrock failed to respond"

// chatService implements the ChatService interface
type chatService struct {
	sessionRepo repositories.SessionRepository
	messageRepo repositories.MessageRepository
	knowledge   KnowledgeService
	validator   *validator.Validate
	now         func() time.Time
}

// NewChatService creates a new chat service instance
func NewChatService(sessionRepo repositories.SessionRepository, messageRepo repositories.MessageRepository, knowledge KnowledgeService) ChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		knowledge:   knowledge,
		validator:   validator.New(),
		now:         time.Now,
	}
}

// ListSessions retrieves every session stored for userID
func (s *chatService) ListSessions(ctx context.Context, userID string) ([]repositories.Item, error) {
	items, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return items, nil
}

// ListMessages retrieves a session's messages in the shape clients display
func (s *chatService) ListMessages(ctx context.Context, sessionID string) ([]models.MessageView, error) {
	if err := s.validator.Var(sessionID, "required"); err != nil {
		return nil, fmt.Errorf("%w: sessionId: %v", ErrValidation, err)
	}

	messages, err := s.messageRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	views := make([]models.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, m.View())
	}
	return views, nil
}

// SendPrompt stores the exchange for one prompt and returns the assistant's answer.
// The assistant message is stamped one millisecond after the user message so
// the pair sorts in order.
func (s *chatService) SendPrompt(ctx context.Context, userID string, req *models.PromptRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("%w: prompt request cannot be nil", ErrValidation)
	}
	if err := s.validator.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := s.now().UnixMilli()

	if req.IsFirstMessage {
		session := models.NewChatSession(userID, req.SessionID, req.Prompt, now)
		if err := s.sessionRepo.Create(ctx, session); err != nil {
			return "", fmt.Errorf("failed to create session: %w", err)
		}
	}

	userMessage := models.NewChatMessage(req.SessionID, now, models.RoleUser, req.Prompt)
	if err := s.messageRepo.Create(ctx, userMessage); err != nil {
		return "", fmt.Errorf("failed to save user message: %w", err)
	}

	answer, err := s.knowledge.Answer(ctx, req.Prompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Error("Bedrock error")
		answer = FallbackAnswer
	}

	assistantMessage := models.NewChatMessage(req.SessionID, now+1, models.RoleAssistant, answer)
	if err := s.messageRepo.Create(ctx, assistantMessage); err != nil {
		return "", fmt.Errorf("failed to save assistant message: %w", err)
	}

	return answer, nil
}
