package lambda

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/pkg/server"
)

// Bootstrap loads configuration for fn, configures logging and builds the
// shared container. Function entry points call it from init.
func Bootstrap(ctx context.Context, fn config.Function) (*server.Container, error) {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(fn); err != nil {
		return nil, err
	}
	if err := config.ConfigureLogging(cfg.Logging); err != nil {
		return nil, err
	}

	cm := GetConnectionManager()
	if err := cm.Initialize(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":        string(fn),
		"deployment_mode": config.GetDeploymentMode(),
		"function_name":   config.GetServerlessConfig().FunctionName,
	}).Info("Function initialized")

	return cm.GetContainer(ctx)
}
