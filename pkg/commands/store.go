package commands

import (
	"log"
	"os"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/store"
)

// loadWidget opens the configured store for a one-shot command. Warnings go
// to stderr.
func loadWidget() (*app.Widget, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	logger := log.New(os.Stderr, "", 0)
	return app.New(app.Options{
		Selections: store.NewSelections(p, cfg.Key(), logger),
		Logger:     logger,
		YearGap:    cfg.YearGap(),
	}), nil
}
