package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/commands/options"
	"tableflip.dev/daymark/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	yo := &options.YearOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the selected days of a year.",
		Example: `
daymark stats
daymark stats --year 2022 --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			w, err := loadWidget()
			if err != nil {
				return oo.HandleError(err)
			}
			now := time.Now()
			s := stats.Stats{
				Widget: w,
				Year:   yo.GetYear(now),
				Now:    now,
				JSON:   oo.JSON,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddYearArgs(cmd, yo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
