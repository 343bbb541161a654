package lambda

import (
	"context"
	"sync"
	"time"

	"chat-assistant-api/internal/config"
	"chat-assistant-api/pkg/server"
)

// ContainerFactory builds the service container for an execution environment
type ContainerFactory func(ctx context.Context, cfg *config.Config) (*server.Container, error)

// ConnectionManager keeps AWS clients and services alive across warm invocations
type ConnectionManager struct {
	container *server.Container
	lastUsed  time.Time
	mu        sync.RWMutex
	initOnce  sync.Once
	initErr   error
	factory   ContainerFactory
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(server.NewContainer)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager using factory
func NewConnectionManager(factory ContainerFactory) *ConnectionManager {
	return &ConnectionManager{factory: factory}
}

// Initialize builds the container once; later calls return the first result
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.initOnce.Do(func() {
		container, err := cm.factory(ctx, cfg)
		if err != nil {
			cm.initErr = err
			return
		}

		cm.mu.Lock()
		defer cm.mu.Unlock()
		cm.container = container
		cm.lastUsed = time.Now()
	})

	return cm.initErr
}

// GetContainer returns the service container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	container := cm.container
	cm.mu.RUnlock()

	if container == nil {
		cfg, err := config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
		if err := cm.Initialize(ctx, cfg); err != nil {
			return nil, err
		}
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastUsed = time.Now()
	return cm.container, nil
}

// LastUsed returns when the container was last handed out
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lastUsed
}
