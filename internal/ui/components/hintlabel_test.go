package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "GET", 8, "GET"},
		{"exact", "12345678", 8, "12345678"},
		{"long", "New Scratch Pad", 8, "New Scr…"},
		{"multibyte", "ünïcødé-títle", 5, "ünïc…"},
		{"no limit", "anything goes", 0, "anything goes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateRunes(tt.in, tt.max))
		})
	}
}

func TestHintLabel_Text(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("List all users in the org", 10)
	assert.Equal(t, "List all users in the org", h.Text())
	assert.Equal(t, "List all …", h.DisplayText())
	assert.True(t, h.needsTooltip())

	h.SetText("Short")
	assert.Equal(t, "Short", h.DisplayText())
	assert.False(t, h.needsTooltip())
}

func TestHintLabel_Tapped(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("pad", 10)
	assert.Equal(t, desktop.DefaultCursor, h.Cursor())
	test.Tap(h) // no handler, no panic

	taps := 0
	h.OnTapped = func() { taps++ }
	test.Tap(h)
	test.Tap(h)
	assert.Equal(t, 2, taps)
	assert.Equal(t, desktop.PointerCursor, h.Cursor())
}

func TestHintLabel_SetTextStyle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("pad", 10)
	h.SetTextStyle(fyne.TextStyle{Bold: true})
	assert.True(t, h.label.TextStyle.Bold)
}

func TestHintLabel_Dismiss(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHintLabel("List all users in the org", 10)
	w := test.NewWindow(h)
	defer w.Close()

	h.MouseIn(nil)
	require.NotNil(t, h.popup)
	assert.True(t, h.popup.Visible())
	popup := h.popup

	h.Dismiss()
	assert.Nil(t, h.popup)
	assert.False(t, popup.Visible())

	h.Dismiss() // no popup showing
	assert.Nil(t, h.popup)
}
