package main

import (
	"context"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/internal/handlers"
	"chat-assistant-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var loginHandler *handlers.LoginHandler

func init() {
	container, err := lambda.Bootstrap(context.Background(), config.FunctionLogin)
	if err != nil {
		panic("Failed to initialize: " + err.Error())
	}

	loginHandler = handlers.NewLoginHandler(container.AuthService)
}

func main() {
	awslambda.Start(lambda.Adapt(loginHandler.HandleLogin))
}
