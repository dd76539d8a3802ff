package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the editor's few persisted settings. Everything else is
// per-invocation flags.
type Config interface {
	// BasePath is where template sets are stored.
	BasePath() string
	// SequenceRoot is the default battle-SFX directory.
	SequenceRoot() string
	// AbilityFile is the default AbilityFeatures file.
	AbilityFile() string
	// HistoryCapacity bounds the rename undo stack.
	HistoryCapacity() int
}

// LoadConfig reads .memkit config (yaml implicit) from the working
// directory or MEMKIT_CONFIG_PATH, with MEMKIT_* env overrides. A missing
// config file is fine; defaults apply.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.memkit.db")
	v.SetDefault("sequences", "")
	v.SetDefault("abilities", "")
	v.SetDefault("history", 32)
	v.SetConfigName(".memkit")
	v.SetEnvPrefix("MEMKIT")
	v.AutomaticEnv()

	if override := os.Getenv("MEMKIT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	seq, err := homedir.Expand(v.GetString("sequences"))
	if err != nil {
		return nil, fmt.Errorf("store: expand sequences: %w", err)
	}
	abilities, err := homedir.Expand(v.GetString("abilities"))
	if err != nil {
		return nil, fmt.Errorf("store: expand abilities: %w", err)
	}

	return &fileConfig{
		Path:      base,
		Sequences: seq,
		Abilities: abilities,
		History:   v.GetInt("history"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	Sequences string `json:"sequences"`
	Abilities string `json:"abilities"`
	History   int    `json:"history"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) SequenceRoot() string { return f.Sequences }
func (f *fileConfig) AbilityFile() string  { return f.Abilities }
func (f *fileConfig) HistoryCapacity() int {
	if f.History < 1 {
		return 32
	}
	return f.History
}
