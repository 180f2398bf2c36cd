package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"list-viewer/internal/event"
	"list-viewer/internal/gui"
	"list-viewer/internal/logger"
	"list-viewer/internal/models"
)

const (
	AppName      = "List Viewer"
	AppID        = "com.education.listviewer"
	AppVersion   = "1.0.0"
	WindowTitle  = "Text and Button"
	WindowWidth  = 600
	WindowHeight = 400

	eventBufferSize = 64
)

// defaultItems is the fixed sequence shown by the viewer. It is defined once
// at startup and never mutated.
var defaultItems = []string{"Item 1", "Item 2", "Item 3", "Item 4", "Item 5"}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	session    *models.SessionRepository
	eventBus   *event.Bus
	logger     logger.Logger
	lifecycle  *Lifecycle
	handlers   *Handlers
}

func NewApplication() (*Application, error) {
	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	session, err := models.NewSessionRepository(defaultItems)
	if err != nil {
		return nil, err
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(WindowTitle)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	initial := session.Snapshot()
	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"item_count": initial.Total,
		"first_item": initial.Item,
	})

	eventBus := event.NewBus(eventBufferSize)
	guiManager := gui.NewManager(window, log, initial)
	lifecycle := NewLifecycle(guiManager, eventBus, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		session:    session,
		eventBus:   eventBus,
		logger:     log,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()
	application.setupEventLog()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.session, a.guiManager, a.eventBus, a.logger)

	a.guiManager.SetNextHandler(handlers.HandleNext)
	a.guiManager.SetPreviousHandler(handlers.HandlePrevious)
	a.handlers = handlers
}

// setupEventLog attaches a logging sink to the event bus so every trigger
// leaves a structured log entry.
func (a *Application) setupEventLog() {
	sink := newLogSink(a.logger)
	a.eventBus.Subscribe(event.TypeCursorAdvanced, sink)
	a.eventBus.Subscribe(event.TypeCursorRetreated, sink)
	a.eventBus.Subscribe(event.TypeCursorReset, sink)
}

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reset to First Item", func() {
			a.handlers.HandleReset()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.Quit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation(
				"About "+AppName,
				AppName+" "+AppVersion+"\n\nClick \"Next Item\" to cycle through the list.",
				a.window,
			)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, helpMenu)
	a.window.SetMainMenu(mainMenu)
}

func (a *Application) Run() error {
	a.setupMenus()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit shuts the application down from outside the window close path, such
// as the Quit menu item or a termination signal.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()

	// Use fyne.Do for thread safety; Quit may arrive from a signal handler
	fyne.Do(func() {
		a.fyneApp.Quit()
	})
}
