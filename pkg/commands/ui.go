package commands

import (
	"github.com/spf13/cobra"

	"github.com/memoria-modding/memkit/pkg/commands/options"
	teaui "github.com/memoria-modding/memkit/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SequenceOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the sequence editor interface",
		Example: `
memkit ui
memkit ui -r ./StreamingAssets/Sequences
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			root, err := sequenceRoot(so.Root, cfg)
			if err != nil {
				return err
			}
			if _, err := svc.OpenSequences(root); err != nil {
				return err
			}
			return teaui.Run(svc)
		},
	}

	options.AddSequenceRootArg(cmd, so)
	topLevel.AddCommand(cmd)
}
