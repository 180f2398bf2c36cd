package app

import (
	"fyne.io/fyne/v2"

	"list-viewer/internal/event"
	"list-viewer/internal/gui"
	"list-viewer/internal/logger"
	"list-viewer/internal/models"
)

// Handlers implement the advance-then-refresh call path: each trigger mutates
// the cursor through the session repository, then projects the resulting
// snapshot onto the display before the next trigger can run.
type Handlers struct {
	session    *models.SessionRepository
	guiManager *gui.Manager
	eventBus   *event.Bus
	logger     logger.Logger
}

func NewHandlers(session *models.SessionRepository, guiManager *gui.Manager, eventBus *event.Bus, log logger.Logger) *Handlers {
	return &Handlers{
		session:    session,
		guiManager: guiManager,
		eventBus:   eventBus,
		logger:     log,
	}
}

func (h *Handlers) HandleNext() {
	state := h.session.Advance()

	// Use fyne.Do for thread safety in v2.6+
	fyne.Do(func() {
		h.guiManager.UpdateDisplay(state)
	})

	h.publish(event.TypeCursorAdvanced, state)
}

func (h *Handlers) HandlePrevious() {
	state := h.session.Retreat()

	fyne.Do(func() {
		h.guiManager.UpdateDisplay(state)
	})

	h.publish(event.TypeCursorRetreated, state)
}

func (h *Handlers) HandleReset() {
	state := h.session.Reset()

	fyne.Do(func() {
		h.guiManager.UpdateDisplay(state)
	})

	h.publish(event.TypeCursorReset, state)
}

func (h *Handlers) publish(eventType string, state models.DisplayState) {
	h.eventBus.Publish(event.Event{
		Type: eventType,
		Data: map[string]interface{}{
			"item":     state.Item,
			"position": state.Position,
			"total":    state.Total,
			"triggers": state.Triggers,
		},
	})
}

// logSink logs every trigger event that reaches the bus.
type logSink struct {
	logger logger.Logger
}

func newLogSink(log logger.Logger) *logSink {
	return &logSink{logger: log}
}

func (s *logSink) Handle(evt event.Event) {
	s.logger.Debug("EventLog", evt.Type, evt.Data)
}

func (s *logSink) GetID() string {
	return "app.logsink"
}
