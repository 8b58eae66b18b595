package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shhac/scratch/internal/domain"
	apperrors "github.com/shhac/scratch/internal/errors"
)

// Close button glyphs for the selected pad's delete control.
const (
	GlyphIdle  = "❌"
	GlyphArmed = "✅"
)

// Shell owns the ordered list of scratch pads, the current selection and the
// two-step delete confirmation.
//
// Selection and the armed delete are tracked by PadID. Positional accessors
// (PadAt, SelectIndex, IndexOf) are provided for display and navigation, but
// positions shift whenever an earlier pad is removed.
//
// Shell is not safe for concurrent use; all calls happen on the UI goroutine.
type Shell struct {
	pads     []*domain.ScratchPad
	selected domain.PadID // "" means no selection

	confirmDelete bool
	armedID       domain.PadID
	closeGlyph    string

	newID    func() domain.PadID
	onChange func()
	logger   *slog.Logger
}

// NewShell creates an empty shell.
func NewShell(logger *slog.Logger) *Shell {
	return &Shell{
		closeGlyph: GlyphIdle,
		newID:      domain.NewPadID,
		logger:     logger,
	}
}

// SetOnChange registers a callback invoked after every mutation that changes
// what the sidebar or detail panel should show.
func (s *Shell) SetOnChange(fn func()) {
	s.onChange = fn
}

// CreatePad appends a default pad to the end of the list. The selection is
// not changed.
func (s *Shell) CreatePad() *domain.ScratchPad {
	pad := domain.NewScratchPad(s.newID())
	s.pads = append(s.pads, pad)

	s.logger.Debug("scratch pad created",
		slog.String("id", string(pad.ID)),
		slog.Int("count", len(s.pads)),
	)
	s.changed()
	return pad
}

// Select makes the pad with the given id current. It returns false when the
// id is unknown or already selected.
func (s *Shell) Select(id domain.PadID) bool {
	if id == s.selected || s.indexOf(id) < 0 {
		return false
	}
	s.selected = id
	s.logger.Debug("scratch pad selected", slog.String("id", string(id)))
	s.changed()
	return true
}

// SelectIndex selects the pad at position i. Out of range is a no-op.
func (s *Shell) SelectIndex(i int) bool {
	pad, ok := s.PadAt(i)
	if !ok {
		return false
	}
	return s.Select(pad.ID)
}

// SelectNext moves the selection by delta positions, clamped to the list.
// With nothing selected it selects the first (delta > 0) or last pad.
func (s *Shell) SelectNext(delta int) bool {
	if len(s.pads) == 0 {
		return false
	}
	idx := s.indexOf(s.selected)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(s.pads) - 1
	default:
		idx = min(max(idx+delta, 0), len(s.pads)-1)
	}
	return s.SelectIndex(idx)
}

// RequestDelete handles an activation of a pad's close control.
//
// The first activation arms the confirmation for that pad. A second
// activation on the same pad while armed removes it, clears the selection and
// disarms. Activations on a pad other than the current selection are ignored,
// since only the selected pad shows a close control. It reports whether the
// pad was removed.
func (s *Shell) RequestDelete(id domain.PadID) bool {
	if id == "" || id != s.selected {
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	if !s.confirmDelete || s.armedID != id {
		s.confirmDelete = true
		s.armedID = id
		s.closeGlyph = GlyphArmed
		s.logger.Debug("delete armed", slog.String("id", string(id)))
		s.changed()
		return false
	}

	s.pads = append(s.pads[:idx], s.pads[idx+1:]...)
	s.selected = ""
	s.resetConfirm()

	s.logger.Info("scratch pad deleted",
		slog.String("id", string(id)),
		slog.Int("index", idx),
		slog.Int("remaining", len(s.pads)),
	)
	s.changed()
	return true
}

// Disarm cancels a pending delete confirmation.
func (s *Shell) Disarm() {
	if !s.confirmDelete {
		return
	}
	s.resetConfirm()
	s.logger.Debug("delete disarmed")
	s.changed()
}

func (s *Shell) resetConfirm() {
	s.confirmDelete = false
	s.armedID = ""
	s.closeGlyph = GlyphIdle
}

// Pads returns the pads in display order. The slice is a copy; the pads are not.
func (s *Shell) Pads() []*domain.ScratchPad {
	out := make([]*domain.ScratchPad, len(s.pads))
	copy(out, s.pads)
	return out
}

// Len returns the number of pads.
func (s *Shell) Len() int {
	return len(s.pads)
}

// PadAt returns the pad at position i.
func (s *Shell) PadAt(i int) (*domain.ScratchPad, bool) {
	if i < 0 || i >= len(s.pads) {
		return nil, false
	}
	return s.pads[i], true
}

// Pad returns the pad with the given id.
func (s *Shell) Pad(id domain.PadID) (*domain.ScratchPad, bool) {
	return s.PadAt(s.indexOf(id))
}

// IndexOf returns the current position of the pad, or -1.
func (s *Shell) IndexOf(id domain.PadID) int {
	return s.indexOf(id)
}

// Selected resolves the current selection. An id that no longer resolves is
// reported as no selection.
func (s *Shell) Selected() (*domain.ScratchPad, bool) {
	if s.selected == "" {
		return nil, false
	}
	return s.Pad(s.selected)
}

// SelectedID returns the id of the current selection, or "".
func (s *Shell) SelectedID() domain.PadID {
	return s.selected
}

// IsSelected reports whether id is the current selection.
func (s *Shell) IsSelected(id domain.PadID) bool {
	return id != "" && id == s.selected
}

// ConfirmDelete reports whether a delete is armed.
func (s *Shell) ConfirmDelete() bool {
	return s.confirmDelete
}

// ArmedID returns the pad whose delete is armed, or "".
func (s *Shell) ArmedID() domain.PadID {
	return s.armedID
}

// CloseGlyph returns the label for the selected pad's close control. A delete
// armed for a pad that is no longer selected stays armed but shows as idle on
// the newly selected pad.
func (s *Shell) CloseGlyph() string {
	if s.confirmDelete && s.armedID != s.selected {
		return GlyphIdle
	}
	return s.closeGlyph
}

// Rename changes a pad's title. Blank titles are rejected.
func (s *Shell) Rename(id domain.PadID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.ValidationError{Field: "title", Message: "title must not be blank"}
	}
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if pad.Title == title {
		return nil
	}
	pad.Title = title
	s.logger.Debug("scratch pad renamed",
		slog.String("id", string(id)),
		slog.String("title", title),
	)
	s.changed()
	return nil
}

// SetMethod changes a pad's request method.
func (s *Shell) SetMethod(id domain.PadID, m domain.Method) error {
	if !m.Valid() {
		return apperrors.ValidationError{Field: "method", Message: "unsupported method " + string(m)}
	}
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("set method: %w", err)
	}
	pad.Method = m
	return nil
}

// SetURL changes a pad's URL.
func (s *Shell) SetURL(id domain.PadID, url string) error {
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("set url: %w", err)
	}
	pad.URL = url
	return nil
}

// SetBody changes a pad's request body.
func (s *Shell) SetBody(id domain.PadID, body string) error {
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("set body: %w", err)
	}
	pad.Body = body
	return nil
}

// AddHeader appends a request header. Duplicate names are allowed.
func (s *Shell) AddHeader(id domain.PadID, name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ValidationError{Field: "header", Message: "header name must not be blank"}
	}
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("add header: %w", err)
	}
	pad.RequestHeaders = append(pad.RequestHeaders, domain.Header{Name: name, Value: value})
	return nil
}

// RemoveHeader removes the request header at position i. Out of range is a no-op.
func (s *Shell) RemoveHeader(id domain.PadID, i int) error {
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("remove header: %w", err)
	}
	if i < 0 || i >= len(pad.RequestHeaders) {
		return nil
	}
	pad.RequestHeaders = append(pad.RequestHeaders[:i], pad.RequestHeaders[i+1:]...)
	return nil
}

// SetHeaders replaces a pad's request headers.
func (s *Shell) SetHeaders(id domain.PadID, headers []domain.Header) error {
	pad, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("set headers: %w", err)
	}
	pad.RequestHeaders = append([]domain.Header(nil), headers...)
	return nil
}

func (s *Shell) lookup(id domain.PadID) (*domain.ScratchPad, error) {
	pad, ok := s.Pad(id)
	if !ok {
		return nil, apperrors.ErrPadNotFound
	}
	return pad, nil
}

func (s *Shell) indexOf(id domain.PadID) int {
	if id == "" {
		return -1
	}
	for i, p := range s.pads {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Shell) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
