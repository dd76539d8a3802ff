package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/memoria-modding/memkit/pkg/commands/options"
	"github.com/memoria-modding/memkit/pkg/runner/tpl"
)

func addTemplates(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl", "templates"},
		Short:   "Browse, render, and store snippet templates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTemplateList(cmd)
	addTemplateShow(cmd)
	addTemplateRender(cmd)
	addTemplateSets(cmd)
	addTemplateImport(cmd)
	addTemplateExport(cmd)
	addTemplateDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplateList(parent *cobra.Command) {
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates of a catalog or a stored set.",
		Example: `
memkit template list
memkit template list --catalog ability
memkit template list --set "my fire spells"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			l := tpl.List{
				Catalog: to.Catalog,
				Set:     to.Set,
				Service: svc,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddTemplateSourceArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("set", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return setCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTemplateShow(parent *cobra.Command) {
	to := &options.TemplateOptions{}
	co := &options.CopyOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one template with its placeholders.",
		Args:  cobra.ExactArgs(1),
		Example: `
memkit template show single_target_spell
memkit template show sa_auto_shell_protect --copy
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := tpl.Show{
				Set:     to.Set,
				ID:      args[0],
				Copy:    co.Copy,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&to.Set, "set", "", "Look the id up in this stored set.")
	options.AddCopyArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTemplateRender(parent *cobra.Command) {
	to := &options.TemplateOptions{}
	co := &options.CopyOptions{}

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Render a template with placeholder values.",
		Args:  cobra.ExactArgs(1),
		Example: `
memkit template render single_target_spell -v sfx_name=Fire__Single -v reflect=True
memkit template render sa_auto_shell_protect -v sa_id=12 --copy
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			values, err := to.ValueMap()
			if err != nil {
				return err
			}
			r := tpl.Render{
				Set:     to.Set,
				ID:      args[0],
				Values:  values,
				Copy:    co.Copy,
				Service: svc,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&to.Set, "set", "", "Look the id up in this stored set.")
	options.AddTemplateValueArgs(cmd, to)
	options.AddCopyArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTemplateSets(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List stored template sets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := tpl.Sets{Service: svc}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	parent.AddCommand(cmd)
}

func addTemplateImport(parent *cobra.Command) {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a template set from a JSON file.",
		Args:  cobra.ExactArgs(1),
		Example: `
memkit template import sets/fire.json
memkit template import sets/fire.json --name "fire spells"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			i := tpl.Import{
				Path:    args[0],
				Name:    name,
				Service: svc,
			}
			return oo.HandleError(i.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Store under this name instead of the one in the file.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTemplateExport(parent *cobra.Command) {
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "export <file.json>",
		Short: "Export a stored set or a built-in catalog to JSON.",
		Args:  cobra.ExactArgs(1),
		Example: `
memkit template export --set "fire spells" fire.json
memkit template export --catalog sequence builtins.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			e := tpl.Export{
				Set:     to.Set,
				Catalog: to.Catalog,
				Path:    args[0],
				Service: svc,
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	options.AddTemplateSourceArgs(cmd, to)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTemplateDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <set>",
		Short: "Delete a stored template set.",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return setCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			d := tpl.Delete{
				Set:     args[0],
				Service: svc,
			}
			return oo.HandleError(d.Do(context.Background()))
		},
	}
	parent.AddCommand(cmd)
}
