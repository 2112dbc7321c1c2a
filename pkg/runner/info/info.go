package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daymark/pkg/store"
)

// Info reports where the selection is stored and how it is configured.
type Info struct {
	Config store.Config
	Disk   *store.Disk
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DAYMARK_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DAYMARK_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "DAYMARK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key: ", n.Config.Key())
	_, _ = fmt.Fprintln(out, "Config.year_gap: ", n.Config.YearGap())
	if lf := n.Config.LogFile(); lf != "" {
		_, _ = fmt.Fprintln(out, "Config.log_file: ", lf)
	}

	if n.Disk == nil {
		return errors.New("failed to create persistence object")
	}

	_, _ = fmt.Fprintf(out, "Keys:\n")
	found := 0
	for _, k := range n.Disk.Keys(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no keys")
	}
	return nil
}
