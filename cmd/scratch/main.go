package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	scratchApp "github.com/shhac/scratch/internal/app"
	"github.com/shhac/scratch/internal/logging"
	"github.com/shhac/scratch/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Stdout logger for bootstrap errors, before the file logger exists
	bootLogger := logging.NewBootstrapLogger(os.Stdout)

	defer func() {
		if r := recover(); r != nil {
			bootLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	bootLogger.Info("starting Scratch", slog.String("version", ui.Version))

	cfg := scratchApp.ConfigFromEnv()
	fyneApp := app.NewWithID(scratchApp.AppID)

	a, err := scratchApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(a.FyneApp(), a)

	// Blocks until the window is closed
	a.Run(mainWindow.Window())

	a.Logger().Info("application shutdown complete")
	return nil
}
