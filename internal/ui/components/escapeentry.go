package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// EscapeEntry is an Entry that reports the Escape key. A focused entry
// swallows key events, so the canvas-level Escape handler never sees them.
type EscapeEntry struct {
	widget.Entry

	OnEscape func()
}

// NewEscapeEntry creates a single-line entry.
func NewEscapeEntry() *EscapeEntry {
	e := &EscapeEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// NewMultiLineEscapeEntry creates a multi-line entry.
func NewMultiLineEscapeEntry() *EscapeEntry {
	e := &EscapeEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey hands Escape to OnEscape and everything else to the Entry.
func (e *EscapeEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.OnEscape != nil {
		e.OnEscape()
		return
	}
	e.Entry.TypedKey(key)
}
