// Package ui runs the interactive calendar.
package ui

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/store"
	teaui "tableflip.dev/daymark/pkg/tui/app"
)

// UI opens the calendar on the terminal, persisting through Disk and
// reloading when another process writes the selection.
type UI struct {
	Config store.Config
	Disk   *store.Disk
}

func (d *UI) Do(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui requires a terminal")
	}
	if d.Config == nil || d.Disk == nil {
		return errors.New("can not open ui, no store")
	}

	// Log lines would corrupt the alt screen, so they go to log_file or
	// nowhere.
	logger := log.New(io.Discard, "", 0)
	if path := d.Config.LogFile(); path != "" {
		f, err := tea.LogToFile(path, "daymark")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.Default()
	}

	w := app.New(app.Options{
		Selections: store.NewSelections(d.Disk, d.Config.Key(), logger),
		Logger:     logger,
		YearGap:    d.Config.YearGap(),
	})
	return teaui.Run(ctx, w, d.Disk)
}
