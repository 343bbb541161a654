package handlers

// @title Chat Assistant API
// @version 1.0
// @description Login, chat session history and knowledge base chat for the assistant frontend

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name auth
// @tag.description Authentication operations

// @tag.name sessions
// @tag.description Chat session listing

// @tag.name messages
// @tag.description Chat message history

// @tag.name chat
// @tag.description Knowledge base chat
