package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.TokenBundle, error) {
	args := m.Called(ctx, req)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*models.TokenBundle), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) ListSessions(ctx context.Context, userID string) ([]repositories.Item, error) {
	args := m.Called(ctx, userID)
	if items := args.Get(0); items != nil {
		return items.([]repositories.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatService) ListMessages(ctx context.Context, sessionID string) ([]models.MessageView, error) {
	args := m.Called(ctx, sessionID)
	if views := args.Get(0); views != nil {
		return views.([]models.MessageView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatService) SendPrompt(ctx context.Context, userID string, req *models.PromptRequest) (string, error) {
	args := m.Called(ctx, userID, req)
	return args.String(0), args.Error(1)
}
