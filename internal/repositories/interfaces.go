package repositories

import (
	"context"

	"chat-assistant-api/internal/models"
)

// Item is a store record passed through without interpretation
type Item = map[string]interface{}

// SessionRepository defines operations on chat sessions
type SessionRepository interface {
	// ListByUser returns every session item whose partition key is userID.
	// Items are returned as stored; an empty result is an empty slice.
	ListByUser(ctx context.Context, userID string) ([]Item, error)

	// Create stores a new session. It fails with ErrDuplicateEntry when the
	// session already exists.
	Create(ctx context.Context, session *models.ChatSession) error
}

// MessageRepository defines operations on chat messages
type MessageRepository interface {
	// ListBySession returns a session's messages, oldest first
	ListBySession(ctx context.Context, sessionID string) ([]*models.ChatMessage, error)

	// Create stores a message
	Create(ctx context.Context, message *models.ChatMessage) error
}

// RepositoryContainer holds all repository instances
type RepositoryContainer struct {
	SessionRepo SessionRepository
	MessageRepo MessageRepository
}
