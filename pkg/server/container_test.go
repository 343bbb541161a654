package server

import (
	"context"
	"testing"

	"chat-assistant-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		AWS: config.AWSConfig{
			Region:           "us-east-1",
			CognitoRegion:    "us-east-1",
			DynamoDBEndpoint: "http://localhost:8000",
		},
		Cognito: config.CognitoConfig{ClientID: "client-abc"},
		Tables: config.TablesConfig{
			ChatSessions: "ChatSessions",
			ChatMessages: "ChatMessages",
		},
		Knowledge: config.KnowledgeConfig{
			KnowledgeBaseID: "KB123",
			ModelARN:        "arn:aws:bedrock:us-east-1::foundation-model/test",
		},
	}
}

// TestNewContainer verifies that the container can be created without network access
func TestNewContainer(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	container, err := NewContainer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container.AuthService == nil {
		t.Error("AuthService is nil")
	}
	if container.ChatService == nil {
		t.Error("ChatService is nil")
	}
	if err := container.Validate(); err != nil {
		t.Errorf("Container failed validation: %v", err)
	}
}

// TestNewContainerWithClients verifies injected clients are accepted
func TestNewContainerWithClients(t *testing.T) {
	container, err := NewContainerWithClients(testConfig(), &Clients{})
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	if container.Config.Cognito.ClientID != "client-abc" {
		t.Errorf("Expected config to be kept, got %+v", container.Config.Cognito)
	}

	if _, err := NewContainerWithClients(nil, &Clients{}); err == nil {
		t.Error("Expected error for nil config")
	}
	if _, err := NewContainerWithClients(testConfig(), nil); err == nil {
		t.Error("Expected error for nil clients")
	}
}
