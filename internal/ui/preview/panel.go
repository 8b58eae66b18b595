package preview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/scratch/internal/domain"
	"github.com/shhac/scratch/internal/ui/components"
)

// Panel is the right-hand column of the detail view. It mirrors the request
// URL read-only and shows the pad's stored response fields.
type Panel struct {
	widget.BaseWidget

	urlDisplay   *ReadOnlyEntry
	summaryLabel *widget.Label
	bodyDisplay  *ReadOnlyEntry
	response     *widget.Accordion
}

// NewPanel creates an empty preview panel.
func NewPanel() *Panel {
	p := &Panel{
		urlDisplay:   NewReadOnlyEntry(false),
		summaryLabel: widget.NewLabel(""),
		bodyDisplay:  NewReadOnlyEntry(true),
	}
	p.urlDisplay.SetPlaceHolder("No URL")
	p.bodyDisplay.SetPlaceHolder("No response yet")

	p.response = components.NewCollapsibleSection("Response",
		container.NewBorder(p.summaryLabel, nil, nil, nil, p.bodyDisplay),
		true,
	)

	p.ExtendBaseWidget(p)
	return p
}

// Show loads everything the preview displays from pad.
func (p *Panel) Show(pad *domain.ScratchPad) {
	p.SetURL(pad.URL)
	p.summaryLabel.SetText(pad.ResponseSummary())
	p.bodyDisplay.SetText(pad.ResponseBody)
}

// SetURL updates the mirrored URL.
func (p *Panel) SetURL(url string) {
	p.urlDisplay.SetText(url)
}

// URL returns the mirrored URL.
func (p *Panel) URL() string {
	return p.urlDisplay.Text
}

// Summary returns the response summary line.
func (p *Panel) Summary() string {
	return p.summaryLabel.Text
}

// Clear empties every field.
func (p *Panel) Clear() {
	p.urlDisplay.SetText("")
	p.summaryLabel.SetText("")
	p.bodyDisplay.SetText("")
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Preview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			p.urlDisplay,
		),
		nil, nil, nil,
		p.response,
	)
	return widget.NewSimpleRenderer(content)
}
