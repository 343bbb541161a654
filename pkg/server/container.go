package server

import (
	"context"
	"fmt"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/internal/repositories/dynamo"
	"chat-assistant-api/internal/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	AuthService services.AuthService
	ChatService services.ChatService

	// Internal dependencies
	services *services.ServiceContainer
}

// Clients holds the AWS service clients shared by all requests
type Clients struct {
	Cognito  services.InitiateAuthAPI
	DynamoDB dynamo.API
	Bedrock  services.RetrieveAndGenerateAPI
}

// NewAWSClients builds SDK clients from the default credential chain.
// No network calls are made until a client is used.
func NewAWSClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWS.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	cognito := cognitoidentityprovider.NewFromConfig(awsCfg, func(o *cognitoidentityprovider.Options) {
		if cfg.AWS.CognitoRegion != "" {
			o.Region = cfg.AWS.CognitoRegion
		}
	})

	db := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.DynamoDBEndpoint)
		}
	})

	return &Clients{
		Cognito:  cognito,
		DynamoDB: db,
		Bedrock:  bedrockagentruntime.NewFromConfig(awsCfg),
	}, nil
}

// NewContainer creates a new dependency injection container backed by AWS
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	clients, err := NewAWSClients(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewContainerWithClients(cfg, clients)
}

// NewContainerWithClients creates a container around already-built clients
func NewContainerWithClients(cfg *config.Config, clients *Clients) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if clients == nil {
		return nil, fmt.Errorf("clients cannot be nil")
	}

	repos := dynamo.NewRepositoryContainer(clients.DynamoDB, dynamo.TableNames{
		Sessions: cfg.Tables.ChatSessions,
		Messages: cfg.Tables.ChatMessages,
	}, logrus.StandardLogger())

	serviceConfig := &services.ServiceConfig{
		ClientID: cfg.Cognito.ClientID,
		Knowledge: services.KnowledgeConfig{
			KnowledgeBaseID: cfg.Knowledge.KnowledgeBaseID,
			ModelARN:        cfg.Knowledge.ModelARN,
		},
	}

	serviceContainer, err := services.NewServiceContainer(repos, &services.Clients{
		Cognito: clients.Cognito,
		Bedrock: clients.Bedrock,
	}, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:      cfg,
		AuthService: serviceContainer.AuthService,
		ChatService: serviceContainer.ChatService,
		services:    serviceContainer,
	}, nil
}

// Validate checks that every service was wired
func (c *Container) Validate() error {
	return c.services.Validate()
}
