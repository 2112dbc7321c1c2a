// Package export writes the persisted selection as JSON.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/selection"
)

// Export writes the selection blob of Widget to Out.
type Export struct {
	Widget *app.Widget
	Out    io.Writer
}

func (n *Export) Do(_ context.Context) error {
	if n.Widget == nil {
		return errors.New("can not export, no store")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	b, err := selection.Marshal(n.Widget.Store())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
