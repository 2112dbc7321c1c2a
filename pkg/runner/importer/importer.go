// Package importer loads a selection blob from a file into the store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/selection"
)

// Import reads Path and replaces the stored selection with it, or merges
// it in when Merge is set.
type Import struct {
	Widget *app.Widget
	Path   string
	Merge  bool
	Out    io.Writer
}

func (n *Import) Do(_ context.Context) error {
	if n.Widget == nil {
		return errors.New("can not import, no store")
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}
	in, err := selection.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("import %s: %w", n.Path, err)
	}

	next := in
	if n.Merge {
		next = n.Widget.Store()
		for _, y := range in.Years() {
			for _, m := range in.Months(y) {
				next, err = selection.Apply(next, y, m, in.Get(y, m).Slice(), true)
				if err != nil {
					return fmt.Errorf("import %s: %w", n.Path, err)
				}
			}
		}
	}

	n.Widget.Replace(next)
	if err := n.Widget.SaveErr(); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	total := 0
	for _, y := range next.Years() {
		total += next.CountYear(y)
	}
	_, _ = fmt.Fprintf(out, "Imported %s, %d days selected.\n", n.Path, total)
	return nil
}
