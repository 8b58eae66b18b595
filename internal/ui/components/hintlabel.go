package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Compile-time interface checks.
var (
	_ desktop.Hoverable  = (*HintLabel)(nil)
	_ desktop.Cursorable = (*HintLabel)(nil)
	_ fyne.Tappable      = (*HintLabel)(nil)
)

// HintLabel is a label that truncates long text with "…" and shows the full
// text in a popup on hover. When OnTapped is set the label is clickable.
type HintLabel struct {
	widget.BaseWidget

	fullText string
	maxRunes int
	label    *widget.Label
	popup    *widget.PopUp

	OnTapped func()
}

// NewHintLabel creates a label that truncates text longer than maxRunes.
func NewHintLabel(text string, maxRunes int) *HintLabel {
	h := &HintLabel{fullText: text, maxRunes: maxRunes}
	h.label = widget.NewLabel(truncateRunes(text, maxRunes))
	h.ExtendBaseWidget(h)
	return h
}

// SetText replaces the full text.
func (h *HintLabel) SetText(text string) {
	h.fullText = text
	h.label.SetText(truncateRunes(text, h.maxRunes))
}

// Text returns the full, untruncated text.
func (h *HintLabel) Text() string {
	return h.fullText
}

// DisplayText returns the text as shown.
func (h *HintLabel) DisplayText() string {
	return h.label.Text
}

// TextStyle returns the style of the visible label.
func (h *HintLabel) TextStyle() fyne.TextStyle {
	return h.label.TextStyle
}

// SetTextStyle sets the style of the visible label.
func (h *HintLabel) SetTextStyle(style fyne.TextStyle) {
	h.label.TextStyle = style
	h.label.Refresh()
}

// truncateRunes returns s unchanged if it has at most max runes,
// otherwise truncates to max-1 runes and appends "…".
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Tapped implements fyne.Tappable.
func (h *HintLabel) Tapped(_ *fyne.PointEvent) {
	if h.OnTapped != nil {
		h.OnTapped()
	}
}

// Cursor shows a pointer when the label is clickable.
func (h *HintLabel) Cursor() desktop.Cursor {
	if h.OnTapped != nil {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// MouseIn shows a tooltip popup with the full text when the label is truncated.
func (h *HintLabel) MouseIn(_ *desktop.MouseEvent) {
	if !h.needsTooltip() {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(h)
	if c == nil {
		return
	}
	tip := widget.NewLabel(h.fullText)
	h.popup = widget.NewPopUp(tip, c)
	h.popup.ShowAtRelativePosition(fyne.NewPos(0, h.Size().Height), h)
}

// MouseMoved is required by desktop.Hoverable but needs no action.
func (h *HintLabel) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut hides and discards the tooltip popup.
func (h *HintLabel) MouseOut() {
	h.Dismiss()
}

// Dismiss hides the tooltip popup if one is showing. Call it before
// removing the label from its container, since MouseOut will not fire.
func (h *HintLabel) Dismiss() {
	if h.popup != nil {
		h.popup.Hide()
		h.popup = nil
	}
}

func (h *HintLabel) needsTooltip() bool {
	return h.maxRunes > 0 && len([]rune(h.fullText)) > h.maxRunes
}

// CreateRenderer implements fyne.Widget.
func (h *HintLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.label)
}
