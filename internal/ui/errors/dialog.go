package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/scratch/internal/errors"
)

// ShowError displays an error dialog with recovery suggestions and
// collapsed technical details. Informational errors are not shown.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}

	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil {
		dialog.ShowError(err, window)
		return
	}
	if uiErr.Severity == apperrors.SeverityInfo {
		return
	}

	d := dialog.NewCustom(uiErr.Title, "Close", dialogContent(uiErr), window)
	d.Resize(fyne.NewSize(420, 260))
	d.Show()
}

// dialogContent lays out the message, recovery bullets and details.
func dialogContent(uiErr *apperrors.UIError) *fyne.Container {
	// Word-wrapping labels keep the dialog from growing horizontally
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		))
	}
	return content
}
