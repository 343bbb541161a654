package services

import (
	"context"
	"errors"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"
)

// Common service errors
var (
	// ErrValidation is returned when a request fails validation
	ErrValidation = errors.New("validation failed")

	// ErrNoAuthenticationResult is returned when Cognito answers without tokens,
	// for example with a NEW_PASSWORD_REQUIRED challenge
	ErrNoAuthenticationResult = errors.New("authentication result missing from response")

	// ErrEmptyAnswer is returned when the knowledge base produces no text
	ErrEmptyAnswer = errors.New("knowledge base returned no output")
)

// AuthService exchanges user credentials for identity tokens
type AuthService interface {
	Authenticate(ctx context.Context, req *models.LoginRequest) (*models.TokenBundle, error)
}

// KnowledgeService answers prompts from a knowledge base
type KnowledgeService interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// ChatService defines chat session and message operations
type ChatService interface {
	// ListSessions returns the stored session items for a user
	ListSessions(ctx context.Context, userID string) ([]repositories.Item, error)

	// ListMessages returns a session's history, oldest first
	ListMessages(ctx context.Context, sessionID string) ([]models.MessageView, error)

	// SendPrompt records the prompt, asks the knowledge base and records the answer
	SendPrompt(ctx context.Context, userID string, req *models.PromptRequest) (string, error)
}
