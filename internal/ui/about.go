package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/scratch/internal/ui.Version=1.2.3"
var Version = "dev"

// shortcutRef lists the keyboard shortcuts shown in the reference dialog.
var shortcutRef = []struct{ action, key string }{
	{"New Scratch Pad", "⌘ N"},
	{"Delete Selected (press twice)", "⌘ ⌫"},
	{"Select Previous", "⌘ ↑"},
	{"Select Next", "⌘ ↓"},
	{"Cancel Delete", "Escape"},
}

// ShowAboutDialog displays information about Scratch.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Scratch", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("A scratch pad for HTTP requests"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About Scratch", "Close", content, parent)
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutRef {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
