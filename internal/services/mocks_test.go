package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/stretchr/testify/mock"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"
)

type mockCognito struct {
	mock.Mock
}

func (m *mockCognito) InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*cognitoidentityprovider.InitiateAuthOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBedrock struct {
	mock.Mock
}

func (m *mockBedrock) RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*bedrockagentruntime.RetrieveAndGenerateOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockKnowledge struct {
	mock.Mock
}

func (m *mockKnowledge) Answer(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) ListByUser(ctx context.Context, userID string) ([]repositories.Item, error) {
	args := m.Called(ctx, userID)
	if items := args.Get(0); items != nil {
		return items.([]repositories.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.ChatSession) error {
	return m.Called(ctx, session).Error(0)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) ListBySession(ctx context.Context, sessionID string) ([]*models.ChatMessage, error) {
	args := m.Called(ctx, sessionID)
	if messages := args.Get(0); messages != nil {
		return messages.([]*models.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMessageRepo) Create(ctx context.Context, message *models.ChatMessage) error {
	return m.Called(ctx, message).Error(0)
}
