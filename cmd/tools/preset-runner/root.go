package main

import (
	"github.com/spf13/cobra"

	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/common/logger"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "preset-runner",
		Short:         "Run site generation presets outside of Zeebe",
		Long:          `preset-runner lists the preset catalog, validates preset files and runs presets through the generation engine, printing a batch summary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (defaults to configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(newListCmd(opts), newValidateCmd(), newRunCmd(opts), newStartCmd(opts))
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFromFile(o.configPath)
	}
	return config.Load()
}

func (o *rootOptions) logger() logger.Logger {
	return logger.NewStructured(o.logLevel, "console")
}
