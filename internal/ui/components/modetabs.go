package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ModeTab is one option of a ModeTabs toggle.
type ModeTab struct {
	Label   string
	Content fyne.CanvasObject
}

// ModeTabs switches between content views with a horizontal RadioGroup.
// This visually distinguishes the mode switch from content-level AppTabs.
// Modes are identified by their lower-cased label ("Body" → "body").
type ModeTabs struct {
	widget.BaseWidget

	modeSelect   *widget.RadioGroup
	labels       []string
	contents     map[string]fyne.CanvasObject
	contentStack *fyne.Container // holds the active content

	onModeChange func(mode string)
}

// NewModeTabs creates a ModeTabs showing the first tab initially.
func NewModeTabs(tabs ...ModeTab) *ModeTabs {
	m := &ModeTabs{
		contents: make(map[string]fyne.CanvasObject, len(tabs)),
	}
	for _, tab := range tabs {
		m.labels = append(m.labels, tab.Label)
		m.contents[strings.ToLower(tab.Label)] = tab.Content
	}

	m.modeSelect = widget.NewRadioGroup(m.labels, func(selected string) {
		mode := strings.ToLower(selected)
		m.updateContent(mode)
		if m.onModeChange != nil {
			m.onModeChange(mode)
		}
	})
	m.modeSelect.Horizontal = true
	m.modeSelect.Required = true

	m.contentStack = container.NewStack()
	if len(m.labels) > 0 {
		m.modeSelect.Selected = m.labels[0]
		m.updateContent(strings.ToLower(m.labels[0]))
	}

	m.ExtendBaseWidget(m)
	return m
}

// SetOnModeChange sets the callback invoked with the new mode after a switch.
func (m *ModeTabs) SetOnModeChange(fn func(mode string)) {
	m.onModeChange = fn
}

// SetMode switches to the given mode. Unknown modes and the current mode are
// ignored, so the callback only fires on a real change.
func (m *ModeTabs) SetMode(mode string) {
	if m.GetMode() == mode {
		return
	}
	for _, label := range m.labels {
		if strings.ToLower(label) == mode {
			m.modeSelect.SetSelected(label)
			return
		}
	}
}

// GetMode returns the current mode.
func (m *ModeTabs) GetMode() string {
	if m.modeSelect.Selected == "" {
		if len(m.labels) == 0 {
			return ""
		}
		return strings.ToLower(m.labels[0])
	}
	return strings.ToLower(m.modeSelect.Selected)
}

// updateContent swaps the visible content in the stack.
func (m *ModeTabs) updateContent(mode string) {
	content, ok := m.contents[mode]
	if !ok {
		return
	}
	m.contentStack.Objects = []fyne.CanvasObject{content}
	m.contentStack.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (m *ModeTabs) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(m.modeSelect, nil, nil, nil, m.contentStack)
	return widget.NewSimpleRenderer(content)
}
