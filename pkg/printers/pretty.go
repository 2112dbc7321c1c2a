package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrettyPrint writes human readable output. Out defaults to color.Output.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " day")
	default:
		_, _ = c.Fprintln(pp.out(), " days")
	}
}

// Days prints a day list, or a faint "none" when it is empty.
func (pp *PrettyPrint) Days(days []int) {
	if len(days) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n")
		return
	}
	for i, d := range days {
		if i > 0 {
			_, _ = fmt.Fprint(pp.out(), " ")
		}
		_, _ = fmt.Fprint(pp.out(), d)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}
