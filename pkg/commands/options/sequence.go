package options

import (
	"github.com/spf13/cobra"
)

// SequenceOptions captures the flags shared by sequence-directory
// commands.
type SequenceOptions struct {
	Root     string
	Folder   string
	Filename string
}

// AddSequenceRootArg wires the --root flag. An empty value falls back to
// the configured default.
func AddSequenceRootArg(cmd *cobra.Command, o *SequenceOptions) {
	cmd.Flags().StringVarP(&o.Root, "root", "r", "",
		"Battle-SFX sequence directory.")
}

// AddSequenceSelectArgs wires folder and file selection flags.
func AddSequenceSelectArgs(cmd *cobra.Command, o *SequenceOptions) {
	cmd.Flags().StringVar(&o.Folder, "folder", "",
		"Effect folder name, e.g. ef0104.")
	cmd.Flags().StringVar(&o.Filename, "name", "",
		"Sequence file name inside the folder.")
}
