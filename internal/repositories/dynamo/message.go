package dynamo

import (
	"context"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/sirupsen/logrus"
)

const messagePartitionKey = "sessionId"

// MessageRepository implements the MessageRepository interface for DynamoDB
type MessageRepository struct {
	*BaseRepository
}

// NewMessageRepository creates a new DynamoDB message repository
func NewMessageRepository(client API, table string, logger *logrus.Logger) repositories.MessageRepository {
	return &MessageRepository{
		BaseRepository: NewBaseRepository(client, table, "message", logger),
	}
}

// ListBySession retrieves a session's messages in timestamp order
func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.ChatMessage, error) {
	key := expression.Key(messagePartitionKey).Equal(expression.Value(sessionID))

	raw, err := r.query(ctx, "list_by_session", key, aws.Bool(true))
	if err != nil {
		return nil, err
	}

	messages := make([]*models.ChatMessage, 0, len(raw))
	if err := attributevalue.UnmarshalListOfMaps(raw, &messages); err != nil {
		return nil, repositories.NewRepositoryError("list_by_session", "message", r.table, err)
	}

	return messages, nil
}

// Create stores a message
func (r *MessageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	if err := message.Validate(); err != nil {
		return repositories.ValidationError("message", err)
	}

	return r.put(ctx, "create", message, nil)
}
