package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLIENT_ID", "")
	t.Setenv("CHAT_SESSIONS_TABLE", "")
	t.Setenv("COGNITO_REGION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.CognitoRegion)
	assert.Equal(t, "ChatSessions", cfg.Tables.ChatSessions)
	assert.Equal(t, "ChatMessages", cfg.Tables.ChatMessages)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLIENT_ID", "app-client-1")
	t.Setenv("CHAT_SESSIONS_TABLE", "Sessions-dev")
	t.Setenv("KNOWLEDGE_BASE_ID", "KB123")
	t.Setenv("MODEL_ARN", "arn:aws:bedrock:us-east-1::foundation-model/test")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "app-client-1", cfg.Cognito.ClientID)
	assert.Equal(t, "Sessions-dev", cfg.Tables.ChatSessions)
	assert.Equal(t, "KB123", cfg.Knowledge.KnowledgeBaseID)
	assert.Equal(t, "http://localhost:8000", cfg.AWS.DynamoDBEndpoint)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		fn      Function
		wantErr string
	}{
		{
			name:    "login needs client id",
			cfg:     Config{},
			fn:      FunctionLogin,
			wantErr: "CLIENT_ID",
		},
		{
			name: "sessions needs nothing extra",
			cfg:  Config{},
			fn:   FunctionSessions,
		},
		{
			name:    "knowledge needs model arn",
			cfg:     Config{Knowledge: KnowledgeConfig{KnowledgeBaseID: "KB"}},
			fn:      FunctionKnowledge,
			wantErr: "MODEL_ARN",
		},
		{
			name:    "server needs local secret",
			cfg:     Config{Cognito: CognitoConfig{ClientID: "c"}, Knowledge: KnowledgeConfig{KnowledgeBaseID: "KB", ModelARN: "arn"}},
			fn:      FunctionServer,
			wantErr: "LOCAL_JWT_SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.fn)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	t.Run("NotLambda", func(t *testing.T) {
		cfg := &Config{Logging: LoggingConfig{Format: "text"}, AWS: AWSConfig{DynamoDBEndpoint: "http://localhost:8000"}}
		out := AdaptConfigForServerless(cfg, &ServerlessConfig{IsLambda: false})
		assert.Equal(t, "text", out.Logging.Format)
		assert.Equal(t, "http://localhost:8000", out.AWS.DynamoDBEndpoint)
	})

	t.Run("Lambda", func(t *testing.T) {
		cfg := &Config{Logging: LoggingConfig{Format: "text"}, AWS: AWSConfig{DynamoDBEndpoint: "http://localhost:8000"}}
		out := AdaptConfigForServerless(cfg, &ServerlessConfig{IsLambda: true, Region: "eu-west-1"})
		assert.Equal(t, "json", out.Logging.Format)
		assert.Empty(t, out.AWS.DynamoDBEndpoint)
		assert.Equal(t, "eu-west-1", out.AWS.Region)
	})
}

func TestIsRunningInLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	assert.False(t, isRunningInLambda())

	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "listChatSessions")
	assert.True(t, isRunningInLambda())
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, ConfigureLogging(LoggingConfig{Level: "debug", Format: "text"}))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, ConfigureLogging(LoggingConfig{Level: "loud", Format: "json"}))
	assert.Error(t, ConfigureLogging(LoggingConfig{Level: "info", Format: "xml"}))
}
