package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/memoria-modding/memkit/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(memkit completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(memkit completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func setCompletions() []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	return p.Sets(context.Background())
}
