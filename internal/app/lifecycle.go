package app

import (
	"sync"

	"list-viewer/internal/event"
	"list-viewer/internal/gui"
	"list-viewer/internal/logger"
)

type Lifecycle struct {
	guiManager   *gui.Manager
	eventBus     *event.Bus
	logger       logger.Logger
	shutdownOnce sync.Once
}

func NewLifecycle(gm *gui.Manager, bus *event.Bus, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		eventBus:   bus,
		logger:     log,
	}
}

// Shutdown runs the sequence exactly once; the close intercept and the
// signal handler can both reach it concurrently.
func (l *Lifecycle) Shutdown() {
	l.shutdownOnce.Do(l.shutdown)
}

func (l *Lifecycle) shutdown() {
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	// Shutdown components in reverse dependency order
	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	// Event bus last so shutdown events still reach the log sink
	if l.eventBus != nil {
		l.eventBus.Shutdown()
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
