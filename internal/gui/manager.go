package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"list-viewer/internal/gui/components"
	"list-viewer/internal/logger"
	"list-viewer/internal/models"
)

// Manager assembles the display surface, toolbar and status bar, and routes
// trigger activations to the handlers the application wires in. Widget
// mutations are plain; callers off the UI thread wrap them in fyne.Do.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	itemDisplay *components.ItemDisplay
	toolbar     *components.Toolbar
	statusBar   *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger, initial models.DisplayState) *Manager {
	itemDisplay := components.NewItemDisplay(initial.Item)
	toolbar := components.NewToolbar()
	statusBar := components.NewStatusBar()

	statusBar.SetPosition(initial.Position, initial.Total)
	statusBar.SetTriggers(initial.Triggers)

	manager := &Manager{
		window:      window,
		logger:      log,
		itemDisplay: itemDisplay,
		toolbar:     toolbar,
		statusBar:   statusBar,
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"initial_item": initial.Item,
		"item_count":   initial.Total,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		container.NewVBox(
			m.toolbar.GetContainer(),
			m.statusBar.GetContainer(),
		),
		nil, nil,
		m.itemDisplay.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Toolbar() *components.Toolbar {
	return m.toolbar
}

func (m *Manager) SetNextHandler(handler func()) {
	m.toolbar.SetNextHandler(func() {
		m.logger.Debug("GUIManager", "next item requested", nil)
		handler()
	})
}

func (m *Manager) SetPreviousHandler(handler func()) {
	m.toolbar.SetPreviousHandler(func() {
		m.logger.Debug("GUIManager", "previous item requested", nil)
		handler()
	})
}

// UpdateDisplay projects a post-trigger snapshot onto the visible surfaces.
// The item text, position readout and trigger count change together, so the
// display never shows a mix of old and new state.
func (m *Manager) UpdateDisplay(state models.DisplayState) {
	m.itemDisplay.SetItem(state.Item)
	m.statusBar.SetPosition(state.Position, state.Total)
	m.statusBar.SetTriggers(state.Triggers)

	m.logger.Debug("GUIManager", "display updated", map[string]interface{}{
		"item":     state.Item,
		"position": state.Position,
		"triggers": state.Triggers,
	})
}

// CurrentItem returns the text currently visible in the display region.
func (m *Manager) CurrentItem() string {
	return m.itemDisplay.Item()
}

// StatusBar exposes the status bar for readout checks.
func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	dialog.ShowError(err, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
