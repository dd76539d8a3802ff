package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// TemplateOptions captures the flags shared by template commands.
type TemplateOptions struct {
	Catalog string
	Set     string
	Values  []string
}

// AddTemplateSourceArgs wires the catalog and set selection flags.
func AddTemplateSourceArgs(cmd *cobra.Command, o *TemplateOptions) {
	cmd.Flags().StringVar(&o.Catalog, "catalog", "sequence",
		"Built-in catalog to use, 'ability' or 'sequence'.")
	cmd.Flags().StringVar(&o.Set, "set", "",
		"Stored template set to use instead of a catalog.")
}

// AddTemplateValueArgs wires repeatable key=value substitution flags.
func AddTemplateValueArgs(cmd *cobra.Command, o *TemplateOptions) {
	cmd.Flags().StringArrayVarP(&o.Values, "value", "v", nil,
		"Placeholder substitution as key=value. Repeatable.")
}

// ValueMap parses the collected key=value pairs.
func (o *TemplateOptions) ValueMap() (map[string]string, error) {
	values := make(map[string]string, len(o.Values))
	for _, kv := range o.Values {
		k, v, found := strings.Cut(kv, "=")
		if !found || k == "" {
			return nil, fmt.Errorf("invalid --value %q, want key=value", kv)
		}
		values[k] = v
	}
	return values, nil
}

// CopyOptions adds clipboard support to show and render commands.
type CopyOptions struct {
	Copy bool
}

// AddCopyArg wires the --copy flag.
func AddCopyArg(cmd *cobra.Command, o *CopyOptions) {
	cmd.Flags().BoolVar(&o.Copy, "copy", false,
		"Also copy the output to the clipboard.")
}
