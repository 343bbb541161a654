package main

import (
	"context"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/internal/handlers"
	"chat-assistant-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var messageHandler *handlers.MessageHandler

func init() {
	container, err := lambda.Bootstrap(context.Background(), config.FunctionMessages)
	if err != nil {
		panic("Failed to initialize: " + err.Error())
	}

	messageHandler = handlers.NewMessageHandler(container.ChatService)
}

func main() {
	awslambda.Start(lambda.Adapt(messageHandler.HandleList))
}
