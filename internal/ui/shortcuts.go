package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+N: New scratch pad
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyN,
		Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: new scratch pad")
		w.handleNewPad()
	})

	// Cmd+Backspace: Arm, then confirm, delete of the selected pad
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyBackspace,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: delete selected")
		w.handleDeleteSelected()
	})

	// Cmd+Up / Cmd+Down: Move selection
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyUp,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: select previous")
		w.handleMove(-1)
	})
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyDown,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: select next")
		w.handleMove(1)
	})

	// Escape: Cancel a pending delete. Focused text fields report Escape
	// through detail.Panel.SetOnEscape instead.
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (disarm delete)")
			w.handleEscape()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}
