package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ssnote/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

type component struct {
	name string
	c    Shutdownable
}

// Manager tears registered components down once, in reverse registration
// order, on the calling goroutine.
type Manager struct {
	components []component
	logger     logger.Logger
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(ctx context.Context, log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(ctx)

	return &Manager{
		logger: log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, c: c})
}

// Listen calls onSignal when SIGINT or SIGTERM arrives. onSignal runs on a
// background goroutine and should hand the work to the UI thread.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-m.ctx.Done():
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(m.shutdown)
}

func (m *Manager) shutdown() {
	m.mu.Lock()
	components := append([]component(nil), m.components...)
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		m.run(components[i])
	}

	close(m.done)
	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) run(c component) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("ShutdownManager", fmt.Errorf("component panicked: %v", r), map[string]interface{}{
				"component": c.name,
			})
		}
	}()

	c.c.Shutdown()
	m.logger.Debug("ShutdownManager", "component shut down", map[string]interface{}{
		"component": c.name,
	})
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
