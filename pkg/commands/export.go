package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored selection as JSON to stdout.",
		Example: `
daymark export > days.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			w, err := loadWidget()
			if err != nil {
				return err
			}
			e := export.Export{Widget: w, Out: cmd.OutOrStdout()}
			return e.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
