// Package config loads sbc runtime settings from .sbc.yaml, SBC_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/betweenness/centrality"
)

// Keys shared between flag binding and the config file.
const (
	KeyEpsilon    = "epsilon"
	KeyMaxPaths   = "max_paths"
	KeyMembership = "membership"
	KeyVerbose    = "verbose"
	KeyGraph      = "graph"
)

// Config holds the settings that shape a centrality run.
type Config struct {
	Epsilon    float64 `mapstructure:"epsilon"`
	MaxPaths   int     `mapstructure:"max_paths"`
	Membership string  `mapstructure:"membership"`
	Verbose    bool    `mapstructure:"verbose"`
	// Graph is a default TOML graph file used when no graph flag is given.
	Graph string `mapstructure:"graph"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEpsilon, centrality.DefaultEpsilon)
	v.SetDefault(KeyMaxPaths, 0)
	v.SetDefault(KeyMembership, centrality.Inclusive.String())
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyGraph, "")
}

// Init points v at cfgFile, or at .sbc.yaml in the working or home
// directory, and enables SBC_* environment overrides. A missing config file
// is not an error.
func Init(v *viper.Viper, cfgFile, home string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".sbc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("SBC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Load applies defaults to v, unmarshals it and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.Epsilon < 0 {
		return cfg, fmt.Errorf("config: epsilon must be non-negative, got %g", cfg.Epsilon)
	}
	if cfg.MaxPaths < 0 {
		return cfg, fmt.Errorf("config: max_paths must be non-negative, got %d", cfg.MaxPaths)
	}
	if _, err := centrality.ParseMembership(cfg.Membership); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Options converts cfg into centrality options.
func (c Config) Options() []centrality.Option {
	m, _ := centrality.ParseMembership(c.Membership)

	return []centrality.Option{
		centrality.WithEpsilon(c.Epsilon),
		centrality.WithMaxPaths(c.MaxPaths),
		centrality.WithMembership(m),
	}
}
