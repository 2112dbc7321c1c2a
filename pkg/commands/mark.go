package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/commands/options"
	"tableflip.dev/daymark/pkg/runner/mark"
)

func addMark(topLevel *cobra.Command) {
	addMarkCommand(topLevel, "mark", "Select days of a month.", true)
}

func addUnmark(topLevel *cobra.Command) {
	addMarkCommand(topLevel, "unmark", "Clear days of a month.", false)
}

func addMarkCommand(topLevel *cobra.Command, use, short string, selected bool) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	var days []int

	cmd := &cobra.Command{
		Use:   use + " <days>",
		Short: short,
		Example: `
daymark ` + use + ` 3
daymark ` + use + ` 10-15 --on 2022-6
daymark ` + use + ` 1,4,9-12
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one day")
			}
			var err error
			days, err = options.ParseDays(args)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := on.GetOn(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			w, err := loadWidget()
			if err != nil {
				return oo.HandleError(err)
			}
			m := mark.Mark{
				Widget:   w,
				On:       c,
				Days:     days,
				Selected: selected,
				JSON:     oo.JSON,
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	registerOnCompletion(cmd)
	topLevel.AddCommand(cmd)
}
