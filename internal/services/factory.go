package services

import (
	"fmt"

	"chat-assistant-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	AuthService      AuthService
	KnowledgeService KnowledgeService
	ChatService      ChatService
}

// Clients holds the AWS service clients the services call
type Clients struct {
	Cognito InitiateAuthAPI
	Bedrock RetrieveAndGenerateAPI
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	ClientID  string
	Knowledge KnowledgeConfig
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos *repositories.RepositoryContainer, clients *Clients, config *ServiceConfig) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository container cannot be nil")
	}
	if clients == nil {
		return nil, fmt.Errorf("clients cannot be nil")
	}
	if config == nil {
		config = &ServiceConfig{}
	}

	authService := NewAuthService(clients.Cognito, config.ClientID)
	knowledgeService := NewKnowledgeService(clients.Bedrock, config.Knowledge)
	chatService := NewChatService(repos.SessionRepo, repos.MessageRepo, knowledgeService)

	return &ServiceContainer{
		AuthService:      authService,
		KnowledgeService: knowledgeService,
		ChatService:      chatService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.AuthService == nil {
		return fmt.Errorf("auth service is nil")
	}
	if sc.KnowledgeService == nil {
		return fmt.Errorf("knowledge service is nil")
	}
	if sc.ChatService == nil {
		return fmt.Errorf("chat service is nil")
	}
	return nil
}
