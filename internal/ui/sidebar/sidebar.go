package sidebar

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/scratch/internal/domain"
	"github.com/shhac/scratch/internal/model"
	"github.com/shhac/scratch/internal/ui/components"
)

// titleMaxRunes is the sidebar width budget for a pad title before it is
// truncated with a hover tooltip.
const titleMaxRunes = 24

// Sidebar lists scratch pads and handles creation, selection and the
// two-step delete. It holds no state of its own: Render rebuilds every row
// from the shell.
type Sidebar struct {
	widget.BaseWidget

	shell  *model.Shell
	logger *slog.Logger

	heading *widget.Label
	newBtn  *widget.Button
	rows    *fyne.Container

	content fyne.CanvasObject
}

// NewSidebar creates a sidebar over shell.
func NewSidebar(shell *model.Shell, logger *slog.Logger) *Sidebar {
	s := &Sidebar{
		shell:  shell,
		logger: logger,
	}

	s.heading = widget.NewLabelWithStyle("Scratch Pads", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	s.newBtn = widget.NewButton("New Scratch Pad", s.handleCreate)
	s.rows = container.NewVBox()

	s.content = container.NewBorder(
		container.NewVBox(s.heading, s.newBtn, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(s.rows),
	)

	s.ExtendBaseWidget(s)
	s.Render()
	return s
}

// Render rebuilds the pad rows from the shell.
func (s *Sidebar) Render() {
	s.dismissTooltips()

	pads := s.shell.Pads()
	rows := make([]fyne.CanvasObject, 0, len(pads))
	for _, pad := range pads {
		rows = append(rows, s.row(pad))
	}
	s.rows.Objects = rows
	s.rows.Refresh()
}

// dismissTooltips hides any hover popup owned by a row about to be replaced.
func (s *Sidebar) dismissTooltips() {
	for _, obj := range s.rows.Objects {
		switch row := obj.(type) {
		case *components.HintLabel:
			row.Dismiss()
		case *fyne.Container:
			for _, child := range row.Objects {
				if title, ok := child.(*components.HintLabel); ok {
					title.Dismiss()
				}
			}
		}
	}
}

// row builds one sidebar entry. The selected pad shows a bold title and its
// close control; every other pad shows a clickable title.
func (s *Sidebar) row(pad *domain.ScratchPad) fyne.CanvasObject {
	id := pad.ID
	title := components.NewHintLabel(pad.Title, titleMaxRunes)

	if !s.shell.IsSelected(id) {
		title.OnTapped = func() {
			s.shell.Select(id)
		}
		return title
	}

	title.SetTextStyle(fyne.TextStyle{Bold: true})
	closeBtn := widget.NewButton(s.shell.CloseGlyph(), func() {
		s.handleClose(id)
	})
	if s.shell.ConfirmDelete() && s.shell.ArmedID() == id {
		closeBtn.Importance = widget.DangerImportance
	} else {
		closeBtn.Importance = widget.LowImportance
	}
	return container.NewBorder(nil, nil, nil, closeBtn, title)
}

func (s *Sidebar) handleCreate() {
	pad := s.shell.CreatePad()
	s.logger.Info("new scratch pad", slog.String("id", string(pad.ID)))
}

func (s *Sidebar) handleClose(id domain.PadID) {
	if s.shell.RequestDelete(id) {
		s.logger.Info("scratch pad removed from sidebar", slog.String("id", string(id)))
	}
}

// CreateRenderer implements fyne.Widget.
func (s *Sidebar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// MinSize keeps the sidebar wide enough for the New button and a title.
func (s *Sidebar) MinSize() fyne.Size {
	size := s.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(size.Width, 180), size.Height)
}
