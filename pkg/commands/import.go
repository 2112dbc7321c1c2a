package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/commands/options"
	"tableflip.dev/daymark/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	merge := false

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored selection with a JSON file written by export.",
		Example: `
daymark import days.json
daymark import --merge days.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w, err := loadWidget()
			if err != nil {
				return oo.HandleError(err)
			}
			i := importer.Import{Widget: w, Path: args[0], Merge: merge}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Add the file's days to the stored selection instead of replacing it.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
