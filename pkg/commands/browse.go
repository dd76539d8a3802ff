package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/memoria-modding/memkit/pkg/app"
	"github.com/memoria-modding/memkit/pkg/commands/options"
	"github.com/memoria-modding/memkit/pkg/runner/ui"
)

func addBrowse(topLevel *cobra.Command) {
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "browse templates in a terminal interface",
		Example: `
memkit browse
memkit browse --catalog ability
memkit browse --set "fire spells"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			set, err := app.Catalog(to.Catalog)
			if to.Set != "" {
				set, err = svc.TemplateSet(to.Set)
			}
			if err != nil {
				return err
			}
			i := ui.UI{Set: set}
			return i.Do(context.Background())
		},
	}

	options.AddTemplateSourceArgs(cmd, to)
	topLevel.AddCommand(cmd)
}
