// Package commands wires the memkit CLI.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/memoria-modding/memkit/pkg/app"
	"github.com/memoria-modding/memkit/pkg/commands/options"
	"github.com/memoria-modding/memkit/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "memkit",
		Short: base.Wrap80("Memoria modding toolkit for ability features and battle-SFX sequences."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAbilities(topLevel)
	addSeq(topLevel)
	addTemplates(topLevel)
	addUI(topLevel)
	addBrowse(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newService builds a session from the on-disk config.
func newService() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.NewService(p, cfg.HistoryCapacity()), cfg, nil
}

// abilityPath resolves the flag value against the configured default.
func abilityPath(flag string, cfg store.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.AbilityFile() != "" {
		return cfg.AbilityFile(), nil
	}
	return "", errors.New("no ability file given, set --file or the 'abilities' config key")
}

// sequenceRoot resolves the flag value against the configured default.
func sequenceRoot(flag string, cfg store.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.SequenceRoot() != "" {
		return cfg.SequenceRoot(), nil
	}
	return "", errors.New("no sequence directory given, set --root or the 'sequences' config key")
}
