package dynamo

import (
	"chat-assistant-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// TableNames holds the tables backing each repository
type TableNames struct {
	Sessions string
	Messages string
}

// NewRepositoryContainer creates all DynamoDB repositories sharing one client
func NewRepositoryContainer(client API, tables TableNames, logger *logrus.Logger) *repositories.RepositoryContainer {
	return &repositories.RepositoryContainer{
		SessionRepo: NewSessionRepository(client, tables.Sessions, logger),
		MessageRepo: NewMessageRepository(client, tables.Messages, logger),
	}
}
