package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bakito/rblxapi2cpp/internal/config"
)

type rootOptions struct {
	configFile string
	debug      bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "rblxapi2cpp",
		Short:        "Generate C++ headers from the Roblox engine API reference",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a configuration file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newFetchCmd(opts),
		newGenerateCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
