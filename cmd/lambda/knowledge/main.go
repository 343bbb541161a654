package main

import (
	"context"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/internal/handlers"
	"chat-assistant-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var knowledgeHandler *handlers.KnowledgeHandler

func init() {
	container, err := lambda.Bootstrap(context.Background(), config.FunctionKnowledge)
	if err != nil {
		panic("Failed to initialize: " + err.Error())
	}

	knowledgeHandler = handlers.NewKnowledgeHandler(container.ChatService)
}

func main() {
	awslambda.Start(lambda.Adapt(knowledgeHandler.HandlePrompt))
}
