package main

import (
	"context"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/internal/handlers"
	"chat-assistant-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var sessionHandler *handlers.SessionHandler

func init() {
	container, err := lambda.Bootstrap(context.Background(), config.FunctionSessions)
	if err != nil {
		panic("Failed to initialize: " + err.Error())
	}

	sessionHandler = handlers.NewSessionHandler(container.ChatService)
}

func main() {
	awslambda.Start(lambda.Adapt(sessionHandler.HandleList))
}
