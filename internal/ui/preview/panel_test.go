package preview

import (
	"net/http"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/shhac/scratch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Show(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	pad := domain.NewScratchPad("pad-1")
	pad.URL = "https://example.com/health"

	p := NewPanel()
	p.Show(pad)

	assert.Equal(t, "https://example.com/health", p.URL())
	assert.Equal(t, "200 OK · 0s · 0 B", p.Summary())
	assert.Empty(t, p.bodyDisplay.Text)

	pad.ResponseStatus = http.StatusTeapot
	pad.ResponseBody = "short and stout"
	p.Show(pad)
	assert.Equal(t, "418 I'm a teapot · 0s · 0 B", p.Summary())
	assert.Equal(t, "short and stout", p.bodyDisplay.Text)
}

func TestPanel_SetURLAndClear(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p := NewPanel()
	p.SetURL("http://localhost:8080")
	assert.Equal(t, "http://localhost:8080", p.URL())

	p.Clear()
	assert.Empty(t, p.URL())
	assert.Empty(t, p.Summary())
}

func TestReadOnlyEntry_BlocksEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	e := NewReadOnlyEntry(false)
	e.SetText("fixed")

	e.TypedRune('x')
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	e.TypedShortcut(&fyne.ShortcutPaste{})

	assert.Equal(t, "fixed", e.Text)
}

func TestNewReadOnlyEntry_MultiLine(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	assert.True(t, NewReadOnlyEntry(true).MultiLine)
	assert.Equal(t, fyne.TextWrapWord, NewReadOnlyEntry(true).Wrapping)
	assert.False(t, NewReadOnlyEntry(false).MultiLine)
}
