package detail

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/scratch/internal/domain"
	"github.com/shhac/scratch/internal/model"
	"github.com/shhac/scratch/internal/ui/components"
	"github.com/shhac/scratch/internal/ui/headers"
	"github.com/shhac/scratch/internal/ui/preview"
)

// Panel edits the selected scratch pad. The left column holds the request
// fields, the right column mirrors the URL and shows the stored response.
// When nothing is selected the panel renders nothing.
type Panel struct {
	widget.BaseWidget

	shell  *model.Shell
	logger *slog.Logger

	// padID is the pad currently loaded into the widgets.
	padID domain.PadID
	// loading suppresses edit callbacks while widgets are filled from a pad.
	loading bool

	titleEntry    *components.EscapeEntry
	methodSelect  *widget.Select
	urlEntry      *components.EscapeEntry
	bodyEntry     *components.EscapeEntry
	headersEditor *headers.Editor
	modeTabs      *components.ModeTabs
	preview       *preview.Panel

	editor fyne.CanvasObject
	root   *fyne.Container

	onError func(err error)
}

// NewPanel creates a detail panel over shell.
func NewPanel(shell *model.Shell, logger *slog.Logger) *Panel {
	p := &Panel{
		shell:  shell,
		logger: logger,
	}

	p.titleEntry = components.NewEscapeEntry()
	p.titleEntry.SetPlaceHolder(domain.DefaultTitle)
	p.titleEntry.OnSubmitted = p.handleRename

	p.methodSelect = widget.NewSelect(domain.MethodNames(), p.handleMethod)

	p.urlEntry = components.NewEscapeEntry()
	p.urlEntry.SetPlaceHolder("https://api.example.com/resource")
	p.urlEntry.OnChanged = p.handleURL

	p.bodyEntry = components.NewMultiLineEscapeEntry()
	p.bodyEntry.SetPlaceHolder("Request body")
	p.bodyEntry.Wrapping = fyne.TextWrapOff
	p.bodyEntry.OnChanged = p.handleBody

	p.headersEditor = headers.NewEditor()
	p.headersEditor.SetOnChanged(p.handleHeaders)

	p.modeTabs = components.NewModeTabs(
		components.ModeTab{Label: "Body", Content: p.bodyEntry},
		components.ModeTab{Label: "Headers", Content: p.headersEditor},
	)

	p.preview = preview.NewPanel()

	p.editor = container.NewGridWithColumns(2, p.requestColumn(), p.preview)
	p.root = container.NewStack()

	p.ExtendBaseWidget(p)
	p.Render()
	return p
}

func (p *Panel) requestColumn() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Title:", p.titleEntry),
		widget.NewFormItem("Method:", p.methodSelect),
		widget.NewFormItem("URL:", p.urlEntry),
	)
	return container.NewBorder(form, nil, nil, nil, p.modeTabs)
}

// SetOnEscape sets the callback for Escape pressed in any of the panel's
// text fields.
func (p *Panel) SetOnEscape(fn func()) {
	p.titleEntry.OnEscape = fn
	p.urlEntry.OnEscape = fn
	p.bodyEntry.OnEscape = fn
	p.headersEditor.SetOnEscape(fn)
}

// SetOnError sets the callback used to report rejected edits.
func (p *Panel) SetOnError(fn func(err error)) {
	p.onError = fn
}

// Render syncs the panel with the shell's selection. Widgets are reloaded
// only when the selected pad changes so edits in progress are not clobbered.
func (p *Panel) Render() {
	pad, ok := p.shell.Selected()
	if !ok {
		if p.padID != "" {
			p.logger.Debug("detail panel cleared", slog.String("id", string(p.padID)))
		}
		p.padID = ""
		p.preview.Clear()
		p.root.Objects = nil
		p.root.Refresh()
		return
	}

	if pad.ID != p.padID {
		p.load(pad)
	} else {
		p.preview.Show(pad)
	}

	if len(p.root.Objects) == 0 {
		p.root.Objects = []fyne.CanvasObject{p.editor}
		p.root.Refresh()
	}
}

// load fills every widget from pad.
func (p *Panel) load(pad *domain.ScratchPad) {
	p.loading = true
	defer func() { p.loading = false }()

	p.padID = pad.ID
	p.titleEntry.SetText(pad.Title)
	p.methodSelect.SetSelected(pad.Method.String())
	p.urlEntry.SetText(pad.URL)
	p.bodyEntry.SetText(pad.Body)
	p.headersEditor.SetHeaders(pad.RequestHeaders)
	p.preview.Show(pad)

	p.logger.Debug("detail panel loaded",
		slog.String("id", string(pad.ID)),
		slog.String("method", pad.Method.String()),
	)
}

// IsEmpty reports whether the panel is rendering nothing.
func (p *Panel) IsEmpty() bool {
	return len(p.root.Objects) == 0
}

// PadID returns the pad loaded into the panel, or "".
func (p *Panel) PadID() domain.PadID {
	return p.padID
}

// Method returns the method shown in the selector.
func (p *Panel) Method() string {
	return p.methodSelect.Selected
}

// URL returns the URL shown in the entry.
func (p *Panel) URL() string {
	return p.urlEntry.Text
}

// PreviewURL returns the URL mirrored in the preview column.
func (p *Panel) PreviewURL() string {
	return p.preview.URL()
}

func (p *Panel) handleRename(title string) {
	if p.loading || p.padID == "" {
		return
	}
	if err := p.shell.Rename(p.padID, title); err != nil {
		p.logger.Warn("rename rejected",
			slog.String("id", string(p.padID)),
			slog.Any("error", err),
		)
		if pad, ok := p.shell.Pad(p.padID); ok {
			p.loading = true
			p.titleEntry.SetText(pad.Title)
			p.loading = false
		}
		p.reportError(err)
	}
}

func (p *Panel) handleMethod(selected string) {
	if p.loading || p.padID == "" {
		return
	}
	m, err := domain.ParseMethod(selected)
	if err == nil {
		err = p.shell.SetMethod(p.padID, m)
	}
	if err != nil {
		p.reportError(err)
	}
}

func (p *Panel) handleURL(url string) {
	if p.loading || p.padID == "" {
		return
	}
	if err := p.shell.SetURL(p.padID, url); err != nil {
		p.reportError(err)
		return
	}
	p.preview.SetURL(url)
}

func (p *Panel) handleBody(body string) {
	if p.loading || p.padID == "" {
		return
	}
	if err := p.shell.SetBody(p.padID, body); err != nil {
		p.reportError(err)
	}
}

func (p *Panel) handleHeaders(hs []domain.Header) {
	if p.loading || p.padID == "" {
		return
	}
	if err := p.shell.SetHeaders(p.padID, hs); err != nil {
		p.reportError(err)
	}
}

func (p *Panel) reportError(err error) {
	if p.onError != nil {
		p.onError(err)
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.root)
}
