package errors

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/shhac/scratch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_States(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tests := []struct {
		state    string
		message  string
		wantText string
		wantIcon string
	}{
		{model.StatusIdle, "", "Ready", theme.InfoIcon().Name()},
		{model.StatusIdle, "3 scratch pads", "3 scratch pads", theme.InfoIcon().Name()},
		{model.StatusArmed, `Click ✅ again to delete "A"`, `Click ✅ again to delete "A"`, theme.WarningIcon().Name()},
		{model.StatusError, "", "Error", theme.ErrorIcon().Name()},
		{"bogus", "ignored", "Unknown state", theme.InfoIcon().Name()},
	}

	for _, tt := range tests {
		t.Run(tt.state+"/"+tt.message, func(t *testing.T) {
			s := NewStatusBar(model.NewStatusUIState())
			_ = s.state.State.Set(tt.state)
			_ = s.state.Message.Set(tt.message)
			s.updateStatus()

			assert.Equal(t, tt.wantText, s.Text())
			assert.Equal(t, tt.wantIcon, s.indicator.Resource.Name())
		})
	}
}

func TestStatusBar_SetState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	status := model.NewStatusUIState()
	s := NewStatusBar(status)
	s.SetState(model.StatusError, "title must not be blank")

	state, _ := status.State.Get()
	message, _ := status.Message.Get()
	assert.Equal(t, model.StatusError, state)
	assert.Equal(t, "title must not be blank", message)
}
