package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/shhac/scratch/internal/logging"
	"github.com/shhac/scratch/internal/model"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	state   *model.ApplicationState
}

// New creates a new App instance with the given configuration.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("scratch", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(fyneApp, cfg, logger), nil
}

// NewWithLogger wires the application around an existing logger.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) *App {
	logger.Info("initializing Scratch application",
		slog.Bool("debug", cfg.Debug),
	)

	state := model.NewApplicationState(logger)
	state.Sync()

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		state:   state,
	}
}

// Run shows the main window and blocks in the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
