package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Function identifies which deployable unit is loading configuration
type Function string

const (
	FunctionLogin     Function = "login"
	FunctionSessions  Function = "sessions"
	FunctionMessages  Function = "messages"
	FunctionKnowledge Function = "knowledge"
	FunctionServer    Function = "server"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	AWS         AWSConfig
	Cognito     CognitoConfig
	Tables      TablesConfig
	Knowledge   KnowledgeConfig
	Logging     LoggingConfig
	LocalAuth   LocalAuthConfig
}

// AWSConfig holds AWS client configuration
type AWSConfig struct {
	Region           string
	CognitoRegion    string
	DynamoDBEndpoint string // DynamoDB Local, empty in AWS
}

// CognitoConfig holds the user pool app client settings
type CognitoConfig struct {
	ClientID string
}

// TablesConfig holds DynamoDB table names
type TablesConfig struct {
	ChatSessions string
	ChatMessages string
}

// KnowledgeConfig holds Bedrock knowledge base settings
type KnowledgeConfig struct {
	KnowledgeBaseID string
	ModelARN        string
}

// LoggingConfig holds logrus settings
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// LocalAuthConfig holds the development server's token settings
type LocalAuthConfig struct {
	Secret string
	Issuer string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("COGNITO_REGION", "us-east-1")
	viper.SetDefault("CHAT_SESSIONS_TABLE", "ChatSessions")
	viper.SetDefault("CHAT_MESSAGES_TABLE", "ChatMessages")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("LOCAL_JWT_ISSUER", "chat-assistant-local")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		AWS: AWSConfig{
			Region:           viper.GetString("AWS_REGION"),
			CognitoRegion:    viper.GetString("COGNITO_REGION"),
			DynamoDBEndpoint: viper.GetString("DYNAMODB_ENDPOINT"),
		},
		Cognito: CognitoConfig{
			ClientID: viper.GetString("CLIENT_ID"),
		},
		Tables: TablesConfig{
			ChatSessions: viper.GetString("CHAT_SESSIONS_TABLE"),
			ChatMessages: viper.GetString("CHAT_MESSAGES_TABLE"),
		},
		Knowledge: KnowledgeConfig{
			KnowledgeBaseID: viper.GetString("KNOWLEDGE_BASE_ID"),
			ModelARN:        viper.GetString("MODEL_ARN"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		LocalAuth: LocalAuthConfig{
			Secret: viper.GetString("LOCAL_JWT_SECRET"),
			Issuer: viper.GetString("LOCAL_JWT_ISSUER"),
		},
	}

	return config, nil
}

// Validate checks that the settings required by fn are present
func (c *Config) Validate(fn Function) error {
	var missing []string

	needsLogin := fn == FunctionLogin || fn == FunctionServer
	needsKnowledge := fn == FunctionKnowledge || fn == FunctionServer

	if needsLogin && c.Cognito.ClientID == "" {
		missing = append(missing, "CLIENT_ID")
	}
	if needsKnowledge {
		if c.Knowledge.KnowledgeBaseID == "" {
			missing = append(missing, "KNOWLEDGE_BASE_ID")
		}
		if c.Knowledge.ModelARN == "" {
			missing = append(missing, "MODEL_ARN")
		}
	}
	if fn == FunctionServer && c.LocalAuth.Secret == "" {
		missing = append(missing, "LOCAL_JWT_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration for %s: %s", fn, strings.Join(missing, ", "))
	}
	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
