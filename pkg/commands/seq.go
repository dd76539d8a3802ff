package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/memoria-modding/memkit/pkg/commands/options"
	"github.com/memoria-modding/memkit/pkg/runner/seq"
)

func addSeq(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "seq",
		Aliases: []string{"sequences", "sfx"},
		Short:   "Work with battle-SFX sequence directories.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSeqList(cmd)
	addSeqShow(cmd)
	addSeqCreate(cmd)
	addSeqRename(cmd)

	topLevel.AddCommand(cmd)
}

func addSeqList(parent *cobra.Command) {
	so := &options.SequenceOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List effect folders, or the sequences of one folder.",
		Example: `
memkit seq list -r ./StreamingAssets/Sequences
memkit seq list --folder ef0104
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			root, err := sequenceRoot(so.Root, cfg)
			if err != nil {
				return err
			}
			l := seq.List{
				Root:    root,
				Folder:  so.Folder,
				Service: svc,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddSequenceRootArg(cmd, so)
	cmd.Flags().StringVar(&so.Folder, "folder", "", "Only list sequences of this folder.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSeqShow(parent *cobra.Command) {
	so := &options.SequenceOptions{}
	co := &options.CopyOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one sequence script.",
		Example: `
memkit seq show --folder ef0104 --name Fire.seq
memkit seq show --folder ef0104 --name Fire.seq --copy
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			root, err := sequenceRoot(so.Root, cfg)
			if err != nil {
				return err
			}
			s := seq.Show{
				Root:     root,
				Folder:   so.Folder,
				Filename: so.Filename,
				Copy:     co.Copy,
				Service:  svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddSequenceRootArg(cmd, so)
	options.AddSequenceSelectArgs(cmd, so)
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("name")
	options.AddCopyArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSeqCreate(parent *cobra.Command) {
	so := &options.SequenceOptions{}
	var body, fromTemplate string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an effect folder or a sequence file.",
		Long: "With only --folder (or nothing, for the next free ef#### " +
			"name) a new folder is created. With --name a sequence file is " +
			"created inside it, optionally seeded from a template.",
		Example: `
memkit seq create
memkit seq create --folder ef0104
memkit seq create --folder ef0104 --name Firaga --template single_target_spell
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			root, err := sequenceRoot(so.Root, cfg)
			if err != nil {
				return err
			}
			c := seq.Create{
				Root:     root,
				Folder:   so.Folder,
				Filename: so.Filename,
				Body:     body,
				Template: fromTemplate,
				Service:  svc,
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	options.AddSequenceRootArg(cmd, so)
	options.AddSequenceSelectArgs(cmd, so)
	cmd.Flags().StringVar(&body, "body", "", "Initial file contents.")
	cmd.Flags().StringVar(&fromTemplate, "template", "", "Seed the file from this template id.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSeqRename(parent *cobra.Command) {
	so := &options.SequenceOptions{}
	var newName string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a sequence file or an effect folder.",
		Long: "Renames the sequence given by --folder and --name, or the " +
			"folder itself when --name is omitted. File renames get the " +
			".seq suffix appended when missing.",
		Example: `
memkit seq rename --folder ef0104 --name Fire.seq --to Firaga
memkit seq rename --folder ef0104 --to ef0200
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			root, err := sequenceRoot(so.Root, cfg)
			if err != nil {
				return err
			}
			r := seq.Rename{
				Root:     root,
				Folder:   so.Folder,
				Filename: so.Filename,
				NewName:  newName,
				Service:  svc,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddSequenceRootArg(cmd, so)
	options.AddSequenceSelectArgs(cmd, so)
	cmd.Flags().StringVar(&newName, "to", "", "The new name.")
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("to")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}
