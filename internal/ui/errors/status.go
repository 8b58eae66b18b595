package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/scratch/internal/model"
)

// StatusBar shows the shell status with a shape-changing icon indicator.
// Each state uses a distinct icon shape, not color alone:
//   - idle: info icon
//   - armed: warning icon (a delete is waiting for confirmation)
//   - error: error icon
type StatusBar struct {
	widget.BaseWidget

	state       *model.StatusUIState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a status bar bound to state.
func NewStatusBar(state *model.StatusUIState) *StatusBar {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.InfoIcon()),
	}
	s.ExtendBaseWidget(s)

	state.State.AddListener(binding.NewDataListener(s.updateStatus))
	state.Message.AddListener(binding.NewDataListener(s.updateStatus))

	s.updateStatus()
	return s
}

// updateStatus refreshes the bar from the bindings.
func (s *StatusBar) updateStatus() {
	stateStr, _ := s.state.State.Get()
	message, _ := s.state.Message.Get()

	switch stateStr {
	case model.StatusIdle:
		s.indicator.SetResource(theme.InfoIcon())
		s.statusLabel.SetText(orDefault(message, "Ready"))

	case model.StatusArmed:
		s.indicator.SetResource(theme.WarningIcon())
		s.statusLabel.SetText(orDefault(message, "Confirm delete"))

	case model.StatusError:
		s.indicator.SetResource(theme.ErrorIcon())
		s.statusLabel.SetText(orDefault(message, "Error"))

	default:
		s.indicator.SetResource(theme.InfoIcon())
		s.statusLabel.SetText("Unknown state")
	}
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// Text returns the displayed status text.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.indicator, s.statusLabel))
}

// SetState updates both bindings. State should be one of "idle", "armed" or
// "error".
func (s *StatusBar) SetState(state string, message string) {
	_ = s.state.State.Set(state)
	_ = s.state.Message.Set(message)
}
