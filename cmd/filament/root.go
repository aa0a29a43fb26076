package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/filament/pkg/filament/header"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "filament",
		Short:        "Inspect and exercise filament header maps",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with header map settings")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log map events at debug level")

	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newBenchCommand(opts))
	return cmd
}

// loadConfig decodes the optional TOML file into a validated header.Config
// and attaches a logger.
func (o *rootOptions) loadConfig() (*header.Config, error) {
	cfg := header.DefaultConfig()
	if o.configPath != "" {
		if _, err := toml.DecodeFile(o.configPath, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", o.configPath, err)
		}
	}

	logger, err := o.newLogger()
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", o.configPath, err)
	}
	return cfg, nil
}

func (o *rootOptions) newLogger() (*zap.Logger, error) {
	if o.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
