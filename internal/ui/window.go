package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	apperrors "github.com/shhac/scratch/internal/errors"
	"github.com/shhac/scratch/internal/model"
	"github.com/shhac/scratch/internal/ui/detail"
	uierrors "github.com/shhac/scratch/internal/ui/errors"
	"github.com/shhac/scratch/internal/ui/sidebar"
)

// WindowTitle is the main window title.
const WindowTitle = "Scratch - HTTP Scratch Pad"

// AppController defines the app-level operations needed by the UI.
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController

	sidebar   *sidebar.Sidebar
	detail    *detail.Panel
	statusBar *uierrors.StatusBar
}

// NewMainWindow creates the main window.
// The window is split horizontally with:
//   - Left side: the scratch pad sidebar
//   - Right side: the detail panel for the selected pad
//
// and a status bar along the bottom.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow(WindowTitle)

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	shell := mw.state.Shell
	mw.sidebar = sidebar.NewSidebar(shell, mw.logger)
	mw.detail = detail.NewPanel(shell, mw.logger)
	mw.statusBar = uierrors.NewStatusBar(mw.state.Status)

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(1200, 800))
	return mw
}

// wireCallbacks connects the shell to the panels. Every shell change
// re-renders both panels and the status bar.
func (w *MainWindow) wireCallbacks() {
	w.state.Shell.SetOnChange(w.render)
	w.detail.SetOnError(w.handleError)
	w.detail.SetOnEscape(w.handleEscape)
}

// render brings every panel in line with the shell.
func (w *MainWindow) render() {
	w.sidebar.Render()
	w.detail.Render()
	w.state.Sync()
}

// handleNewPad appends a pad. The selection is left alone.
func (w *MainWindow) handleNewPad() {
	pad := w.state.Shell.CreatePad()
	w.logger.Info("new scratch pad", slog.String("id", string(pad.ID)))
}

// handleDeleteSelected acts as a click on the selected pad's close control.
func (w *MainWindow) handleDeleteSelected() {
	id := w.state.Shell.SelectedID()
	if id == "" {
		w.handleError(fmt.Errorf("delete: %w", apperrors.ErrNoSelection))
		return
	}
	w.state.Shell.RequestDelete(id)
}

// handleEscape cancels a pending delete.
func (w *MainWindow) handleEscape() {
	w.state.Shell.Disarm()
}

// handleMove moves the selection up (delta < 0) or down.
func (w *MainWindow) handleMove(delta int) {
	w.state.Shell.SelectNext(delta)
}

// handleError reports a failure in the status bar and a dialog.
// Informational errors are only logged.
func (w *MainWindow) handleError(err error) {
	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil {
		return
	}
	if uiErr.Severity == apperrors.SeverityInfo {
		w.logger.Debug("operation skipped", slog.Any("error", err))
		return
	}

	w.logger.Error("operation failed", slog.Any("error", err))
	w.statusBar.SetState(model.StatusError, err.Error())
	uierrors.ShowError(uiErr, w.window)
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────────┬─────────────────────┬─────────────────┐
//	│ Scratch Pads │ Title / Method /URL │ Preview         │
//	│ [New]        ├─────────────────────┤                 │
//	│ pad          │ Body | Headers      │ ▸ Response      │
//	│ pad  ❌      │                     │                 │
//	├──────────────┴─────────────────────┴─────────────────┤
//	│ Status Bar                                           │
//	└──────────────────────────────────────────────────────┘
func (w *MainWindow) SetContent() {
	mainSplit := container.NewHSplit(w.sidebar, w.detail)
	mainSplit.SetOffset(0.25)

	w.window.SetContent(container.NewBorder(
		nil,         // top
		w.statusBar, // bottom
		nil,         // left
		nil,         // right
		mainSplit,
	))
}

// setupMainMenu installs the File and Help menus.
func (w *MainWindow) setupMainMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Scratch Pad", w.handleNewPad),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
