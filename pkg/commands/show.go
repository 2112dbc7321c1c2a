package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/commands/options"
	"tableflip.dev/daymark/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the selected days of a month.",
		Example: `
daymark show
daymark show --on 2022-6 --json
`,
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
			s := show.Show{Widget: w, On: c, JSON: oo.JSON}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	registerOnCompletion(cmd)
	topLevel.AddCommand(cmd)
}
