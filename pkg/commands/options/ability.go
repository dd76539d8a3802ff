package options

import (
	"github.com/spf13/cobra"
)

// AbilityOptions captures the flags shared by ability-file commands.
type AbilityOptions struct {
	Path     string
	Prefix   string
	Header   string
	Index    int
	ShowBody bool
}

// AddAbilityFileArg wires the --file flag. An empty value falls back to
// the configured default.
func AddAbilityFileArg(cmd *cobra.Command, o *AbilityOptions) {
	cmd.Flags().StringVarP(&o.Path, "file", "f", "",
		"Path to the AbilityFeatures file.")
}

// AddAbilityFilterArgs wires header filtering flags.
func AddAbilityFilterArgs(cmd *cobra.Command, o *AbilityOptions) {
	cmd.Flags().StringVarP(&o.Prefix, "prefix", "p", "",
		"Only entries whose header starts with this prefix.")
	cmd.Flags().BoolVarP(&o.ShowBody, "body", "b", false,
		"Show entry bodies, not just headers.")
}

// AddAbilitySelectArgs wires entry selection by header or index.
func AddAbilitySelectArgs(cmd *cobra.Command, o *AbilityOptions) {
	cmd.Flags().StringVar(&o.Header, "header", "",
		"Select the first entry with this exact header line.")
	cmd.Flags().IntVarP(&o.Index, "index", "i", -1,
		"Select the entry at this position.")
}

// ByIndex reports whether selection should go through the index flag.
func (o *AbilityOptions) ByIndex() bool {
	return o.Index >= 0
}
