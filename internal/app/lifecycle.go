package app

import (
	"ssnote/internal/logger"
	"ssnote/internal/session"
	"ssnote/internal/shutdown"
	"ssnote/internal/ticker"
)

// Lifecycle restores the document and starts the timers once the window
// is up, and tears everything down through the shutdown manager.
type Lifecycle struct {
	manager *shutdown.Manager
	session *session.Session
	timers  []*ticker.Repeater
	logger  logger.Logger
	started bool
}

func NewLifecycle(m *shutdown.Manager, s *session.Session, log logger.Logger, timers ...*ticker.Repeater) *Lifecycle {
	return &Lifecycle{
		manager: m,
		session: s,
		timers:  timers,
		logger:  log,
	}
}

// Start binds the startup document, then begins ticking. Calling it again
// is a no-op.
func (l *Lifecycle) Start(initialPath string, prompt bool) {
	if l.started {
		return
	}
	l.started = true

	l.logger.Info("Lifecycle", "startup sequence initiated", map[string]interface{}{
		"initial_path": initialPath,
		"prompt":       prompt,
	})

	l.session.RefreshRecent()
	l.session.Restore(initialPath, prompt)

	ctx := l.manager.Context()
	for _, t := range l.timers {
		t.Start(ctx)
	}

	l.logger.Info("Lifecycle", "startup sequence completed", map[string]interface{}{
		"path": l.session.FilePath(),
	})
}

// ListenForSignals calls onSignal from a background goroutine on SIGINT or
// SIGTERM.
func (l *Lifecycle) ListenForSignals(onSignal func()) {
	l.manager.Listen(onSignal)
}

// Shutdown stops the timers and performs the final save. Safe to call more
// than once.
func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
