package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestEscapeEntry_TypedKey(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	e := NewEscapeEntry()
	escapes := 0
	e.OnEscape = func() { escapes++ }

	test.Type(e, "abc")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})

	assert.Equal(t, 1, escapes)
	assert.Equal(t, "ab", e.Text, "other keys still edit")
}

func TestEscapeEntry_NoHandler(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	e := NewMultiLineEscapeEntry()
	assert.True(t, e.MultiLine)

	test.Type(e, "body")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, "body", e.Text)
}
