package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daymark completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daymark completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// registerOnCompletion completes --on with the months that hold selections.
func registerOnCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("on", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return monthCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func monthCompletions(toComplete string) []string {
	w, err := loadWidget()
	if err != nil {
		return nil
	}
	s := w.Store()
	var out []string
	for _, y := range s.Years() {
		for _, m := range s.Months(y) {
			if c := fmt.Sprintf("%d-%d", y, m); strings.HasPrefix(c, toComplete) {
				out = append(out, c)
			}
		}
	}
	return out
}
