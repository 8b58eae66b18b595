package headers

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/scratch/internal/domain"
	"github.com/shhac/scratch/internal/ui/components"
)

// Editor edits an ordered list of request headers. Duplicate names are kept
// and the list order is the send order.
type Editor struct {
	widget.BaseWidget

	headers []domain.Header

	list     *widget.List
	keyEntry *components.EscapeEntry
	valEntry *components.EscapeEntry
	addBtn   *widget.Button
	clearBtn *widget.Button

	onChanged func(headers []domain.Header)
}

// NewEditor creates an empty header editor.
func NewEditor() *Editor {
	e := &Editor{}

	e.list = widget.NewList(
		func() int {
			return len(e.headers)
		},
		func() fyne.CanvasObject {
			// Template row: name, value, delete button
			return container.NewBorder(nil, nil, nil,
				widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				container.NewGridWithColumns(2, widget.NewLabel(""), widget.NewLabel("")),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(e.headers) {
				return
			}
			row := obj.(*fyne.Container)
			grid := row.Objects[0].(*fyne.Container)
			deleteBtn := row.Objects[1].(*widget.Button)

			h := e.headers[id]
			grid.Objects[0].(*widget.Label).SetText(h.Name)
			grid.Objects[1].(*widget.Label).SetText(h.Value)
			deleteBtn.OnTapped = func() {
				e.removeAt(id)
			}
		},
	)

	e.keyEntry = components.NewEscapeEntry()
	e.keyEntry.SetPlaceHolder("Header name")
	e.keyEntry.OnSubmitted = func(string) { e.addHeader() }

	e.valEntry = components.NewEscapeEntry()
	e.valEntry.SetPlaceHolder("Header value")
	e.valEntry.OnSubmitted = func(string) { e.addHeader() }

	e.addBtn = widget.NewButton("+ Add", e.addHeader)
	e.clearBtn = widget.NewButton("Clear All", e.clear)

	e.ExtendBaseWidget(e)
	return e
}

// SetOnChanged sets the callback invoked after the user edits the list.
func (e *Editor) SetOnChanged(fn func(headers []domain.Header)) {
	e.onChanged = fn
}

// SetOnEscape sets the callback for Escape pressed in either entry.
func (e *Editor) SetOnEscape(fn func()) {
	e.keyEntry.OnEscape = fn
	e.valEntry.OnEscape = fn
}

// SetHeaders replaces the displayed headers without firing the callback.
func (e *Editor) SetHeaders(headers []domain.Header) {
	e.headers = append([]domain.Header(nil), headers...)
	e.keyEntry.SetText("")
	e.valEntry.SetText("")
	e.list.Refresh()
}

// Headers returns a copy of the current headers.
func (e *Editor) Headers() []domain.Header {
	return append([]domain.Header(nil), e.headers...)
}

// addHeader appends the name/value in the entry fields.
func (e *Editor) addHeader() {
	if e.Add(e.keyEntry.Text, e.valEntry.Text) {
		e.keyEntry.SetText("")
		e.valEntry.SetText("")
	}
}

// Add appends a header and fires the callback. Blank names are ignored.
func (e *Editor) Add(name, value string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	e.headers = append(e.headers, domain.Header{Name: name, Value: value})
	e.list.Refresh()
	e.notify()
	return true
}

func (e *Editor) removeAt(index int) {
	if index < 0 || index >= len(e.headers) {
		return
	}
	e.headers = append(e.headers[:index], e.headers[index+1:]...)
	e.list.Refresh()
	e.notify()
}

func (e *Editor) clear() {
	if len(e.headers) == 0 {
		return
	}
	e.headers = nil
	e.list.Refresh()
	e.notify()
}

func (e *Editor) notify() {
	if e.onChanged != nil {
		e.onChanged(e.Headers())
	}
}

// CreateRenderer implements fyne.Widget.
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	entryRow := container.NewBorder(
		nil, nil, nil,
		container.NewHBox(e.addBtn, e.clearBtn),
		container.NewGridWithColumns(2, e.keyEntry, e.valEntry),
	)

	content := container.NewBorder(nil, entryRow, nil, nil, e.list)
	return widget.NewSimpleRenderer(content)
}
