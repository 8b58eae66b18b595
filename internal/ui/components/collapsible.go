package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewCollapsibleSection wraps content in a single-item Accordion titled title.
// The section starts open when expanded is true.
func NewCollapsibleSection(title string, content fyne.CanvasObject, expanded bool) *widget.Accordion {
	accordion := widget.NewAccordion(widget.NewAccordionItem(title, content))
	if expanded {
		accordion.Open(0)
	} else {
		accordion.Close(0)
	}
	return accordion
}
