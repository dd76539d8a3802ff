package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memoria-modding/memkit/pkg/commands/options"
	"github.com/memoria-modding/memkit/pkg/runner/abilities"
)

func addAbilities(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ability",
		Aliases: []string{"sa", "abilities"},
		Short:   "Work with AbilityFeatures entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAbilityList(cmd)
	addAbilityShow(cmd)
	addAbilityAdd(cmd)
	addAbilityMove(cmd)
	addAbilityReplace(cmd)
	addAbilityDelete(cmd)
	addAbilityTypes(cmd)

	topLevel.AddCommand(cmd)
}

func addAbilityList(parent *cobra.Command) {
	ao := &options.AbilityOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries of an ability file.",
		Example: `
memkit ability list -f AbilityFeatures.txt
memkit ability list -p ">SA" --body
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			path, err := abilityPath(ao.Path, cfg)
			if err != nil {
				return err
			}
			l := abilities.List{
				Path:     path,
				Prefix:   ao.Prefix,
				ShowBody: ao.ShowBody,
				Service:  svc,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddAbilityFileArg(cmd, ao)
	options.AddAbilityFilterArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addAbilityShow(parent *cobra.Command) {
	ao := &options.AbilityOptions{}
	co := &options.CopyOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one entry in full.",
		Example: `
memkit ability show --header ">SA 9 AutoPotion"
memkit ability show -i 3 --copy
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			path, err := abilityPath(ao.Path, cfg)
			if err != nil {
				return err
			}
			s := abilities.Show{
				Path:    path,
				Header:  ao.Header,
				Index:   ao.Index,
				ByIndex: ao.ByIndex(),
				Copy:    co.Copy,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddAbilityFileArg(cmd, ao)
	options.AddAbilitySelectArgs(cmd, ao)
	options.AddCopyArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addAbilityAdd(parent *cobra.Command) {
	ao := &options.AbilityOptions{}
	insertAt := -1

	cmd := &cobra.Command{
		Use:   "add [entry text]",
		Short: "Append an entry, or insert it at a position.",
		Long: "Append a new entry from raw text. The first line must start " +
			"with '>'. With no argument the text is read from stdin.",
		Example: `
memkit ability add '>SA 12 Penetrator
IgnoreDefence'
cat entry.txt | memkit ability add
memkit ability add --at 0 '>SA 0 First'
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			path, err := abilityPath(ao.Path, cfg)
			if err != nil {
				return err
			}
			text, err := entryText(args)
			if err != nil {
				return err
			}
			a := abilities.Add{
				Path:    path,
				Text:    text,
				Index:   insertAt,
				Insert:  insertAt >= 0,
				Service: svc,
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddAbilityFileArg(cmd, ao)
	cmd.Flags().IntVar(&insertAt, "at", -1, "Insert at this position instead of appending.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addAbilityMove(parent *cobra.Command) {
	ao := &options.AbilityOptions{}
	var from, to int

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an entry to a new position.",
		Example: `
memkit ability move --from 4 --to 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			path, err := abilityPath(ao.Path, cfg)
			if err != nil {
				return err
			}
			m := abilities.Move{
				Path:    path,
				From:    from,
				To:      to,
				Service: svc,
			}
			return oo.HandleError(m.Do(context.Background()))
		},
	}

	options.AddAbilityFileArg(cmd, ao)
	cmd.Flags().IntVar(&from, "from", -1, "Current position of the entry.")
	cmd.Flags().IntVar(&to, "to", -1, "Position to move it to.")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addAbilityReplace(parent *cobra.Command) {
	ao := &options.AbilityOptions{}

	cmd := &cobra.Command{
		Use:   "replace [entry text]",
		Short: "Replace an entry with new text.",
		Example: `
memkit ability replace --header ">SA 9 AutoPotion" '>SA 9 AutoPotion
Ability AutoPotion
Priority 1'
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			path, err := abilityPath(ao.Path, cfg)
			if err != nil {
				return err
			}
			text, err := entryText(args)
			if err != nil {
				return err
			}
			r := abilities.Replace{
				Path:    path,
				Header:  ao.Header,
				Index:   ao.Index,
				ByIndex: ao.ByIndex(),
				Text:    text,
				Service: svc,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddAbilityFileArg(cmd, ao)
	options.AddAbilitySelectArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addAbilityDelete(parent *cobra.Command) {
	ao := &options.AbilityOptions{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an entry.",
		Example: `
memkit ability delete --header ">SA 9 AutoPotion"
memkit ability delete -i 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			path, err := abilityPath(ao.Path, cfg)
			if err != nil {
				return err
			}
			d := abilities.Delete{
				Path:    path,
				Header:  ao.Header,
				Index:   ao.Index,
				ByIndex: ao.ByIndex(),
				Service: svc,
			}
			return oo.HandleError(d.Do(context.Background()))
		},
	}

	options.AddAbilityFileArg(cmd, ao)
	options.AddAbilitySelectArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addAbilityTypes(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the known target-type tokens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := abilities.Types{}
			return oo.HandleError(t.Do(context.Background()))
		},
	}
	parent.AddCommand(cmd)
}

// entryText takes the entry body from args or, when empty, from stdin.
func entryText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("no entry text given")
	}
	return string(data), nil
}
