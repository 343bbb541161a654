package dynamo

import (
	"context"
	"fmt"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/sirupsen/logrus"
)

const sessionPartitionKey = "userId"

// SessionRepository implements the SessionRepository interface for DynamoDB
type SessionRepository struct {
	*BaseRepository
}

// NewSessionRepository creates a new DynamoDB session repository
func NewSessionRepository(client API, table string, logger *logrus.Logger) repositories.SessionRepository {
	return &SessionRepository{
		BaseRepository: NewBaseRepository(client, table, "session", logger),
	}
}

// ListByUser retrieves the sessions stored under userID
func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]repositories.Item, error) {
	key := expression.Key(sessionPartitionKey).Equal(expression.Value(userID))

	raw, err := r.query(ctx, "list_by_user", key, nil)
	if err != nil {
		return nil, err
	}

	items := make([]repositories.Item, 0, len(raw))
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, repositories.NewRepositoryError("list_by_user", "session", r.table, err)
	}
	if items == nil {
		items = []repositories.Item{}
	}

	return items, nil
}

// Create stores a session unless one with the same key already exists
func (r *SessionRepository) Create(ctx context.Context, session *models.ChatSession) error {
	if session.UserID == "" || session.SessionID == "" {
		return repositories.ValidationError("session", fmt.Errorf("userId and sessionId are required"))
	}

	cond := expression.AttributeNotExists(expression.Name("sessionId"))
	return r.put(ctx, "create", session, &cond)
}
