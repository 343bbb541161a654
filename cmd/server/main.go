package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/internal/handlers"
	"chat-assistant-api/internal/middleware"
	"chat-assistant-api/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(config.FunctionServer); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	if err := config.ConfigureLogging(cfg.Logging); err != nil {
		logrus.Fatalf("Invalid logging configuration: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}
	if err := container.Validate(); err != nil {
		logrus.Fatalf("Invalid container: %v", err)
	}

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routerConfig := &handlers.RouterConfig{
		AuthService: container.AuthService,
		ChatService: container.ChatService,
		Authorizer: middleware.NewAuthorizer(&middleware.AuthConfig{
			JWTSecret: cfg.LocalAuth.Secret,
			Issuer:    cfg.LocalAuth.Issuer,
		}),
	}

	handlers.SetupMiddleware(router)
	handlers.SetupRoutes(router, routerConfig)
	if cfg.Environment != "production" {
		handlers.SetupDevelopmentRoutes(router, routerConfig)
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":              cfg.Port,
		"environment":       cfg.Environment,
		"dynamodb_endpoint": cfg.AWS.DynamoDBEndpoint,
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
