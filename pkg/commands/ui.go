package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/runner/ui"
	"tableflip.dev/daymark/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar in the terminal",
		Example: `
daymark ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg, Disk: p}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
