package main

import (
	"fmt"
	"os"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/search-task-gang/internal/config"
)

const envPrefix = "SEARCHGANG"

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	var syncLogger func()
	defer func() {
		if syncLogger != nil {
			syncLogger()
		}
	}()

	rootCmd := newRootCmd(cfg, &syncLogger)
	rootCmd.AddCommand(newRunCmd(cfg), newServeCmd(cfg), newQueryCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		if syncLogger != nil {
			syncLogger()
		}
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Configuration, syncLogger *func()) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "search-gang",
		Short:        "Search words in many inputs concurrently",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cobrautil.SyncViperPreRunE(envPrefix)(cmd, args); err != nil {
				return fmt.Errorf("failed to read environment: %w", err)
			}

			if err := config.Load(configFile, cmd.Flags(), cfg); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			syncFn, err := setupLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			*syncLogger = syncFn

			zap.S().Named("main").Debugw("configuration loaded", "config", cfg.DebugMap())
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "path to a YAML, JSON or TOML configuration file")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")

	return cmd
}
