package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chat-assistant-api/internal/middleware"
	"chat-assistant-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	AuthService services.AuthService
	ChatService services.ChatService
	Authorizer  *middleware.Authorizer
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	loginHandler := NewLoginHandler(config.AuthService)
	sessionHandler := NewSessionHandler(config.ChatService)
	messageHandler := NewMessageHandler(config.ChatService)
	knowledgeHandler := NewKnowledgeHandler(config.ChatService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "chat-assistant-api",
		})
	})

	// The login route sits outside the authorizer, as in the gateway
	router.POST("/auth/login", Gin(loginHandler.HandleLogin))

	api := router.Group("")
	api.Use(middleware.Authentication(config.Authorizer))
	{
		api.GET("/sessions", Gin(sessionHandler.HandleList))
		api.GET("/messages", Gin(messageHandler.HandleList))
		api.POST("/chat", Gin(knowledgeHandler.HandlePrompt))
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestSizeLimit(middleware.MaxPayloadBytes))
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.ErrorHandler())
}

// DevTokenRequest is the body of the development token endpoint
type DevTokenRequest struct {
	Sub   string `json:"sub" binding:"required"`
	Email string `json:"email"`
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, config *RouterConfig) {
	dev := router.Group("/dev")
	{
		// Issue a token the local authorizer accepts
		dev.POST("/token", func(c *gin.Context) {
			var req DevTokenRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}

			token, err := config.Authorizer.IssueToken(req.Sub, req.Email)
			if err != nil {
				_ = c.Error(err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})
	}
}
