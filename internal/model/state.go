package model

import (
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2/data/binding"
)

// Status values shown in the status bar.
const (
	StatusIdle  = "idle"
	StatusArmed = "armed"
	StatusError = "error"
)

// ApplicationState is the single owned state value handed to the UI. The
// Shell holds the scratch pads; bindings carry derived display state.
type ApplicationState struct {
	Shell  *Shell
	Status *StatusUIState
}

// NewApplicationState creates a new ApplicationState with an empty shell.
func NewApplicationState(logger *slog.Logger) *ApplicationState {
	return &ApplicationState{
		Shell:  NewShell(logger),
		Status: NewStatusUIState(),
	}
}

// StatusUIState represents the UI state for the status bar.
// States: "idle", "armed", "error"
type StatusUIState struct {
	State   binding.String
	Message binding.String
}

// NewStatusUIState creates a new StatusUIState with initialized bindings.
func NewStatusUIState() *StatusUIState {
	state := binding.NewString()
	_ = state.Set(StatusIdle)

	return &StatusUIState{
		State:   state,
		Message: binding.NewString(),
	}
}

// Describe derives the status bar state and message from the shell.
func (s *Shell) Describe() (state, message string) {
	if s.confirmDelete {
		if pad, ok := s.Pad(s.armedID); ok {
			if s.armedID != s.selected {
				// The armed pad's close control is not on screen.
				return StatusArmed, "Delete of \"" + pad.Title + "\" pending, press Escape to cancel"
			}
			return StatusArmed, "Click " + GlyphArmed + " again to delete \"" + pad.Title + "\""
		}
	}
	switch n := len(s.pads); n {
	case 0:
		return StatusIdle, "No scratch pads"
	case 1:
		return StatusIdle, "1 scratch pad"
	default:
		return StatusIdle, strconv.Itoa(n) + " scratch pads"
	}
}

// Sync copies the shell's derived status into the bindings.
func (a *ApplicationState) Sync() {
	state, message := a.Shell.Describe()
	_ = a.Status.State.Set(state)
	_ = a.Status.Message.Set(message)
}
