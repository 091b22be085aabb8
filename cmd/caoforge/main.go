package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/caoforge/caoforge/pkg/config"
	"github.com/caoforge/caoforge/pkg/logger"
	"github.com/caoforge/caoforge/pkg/presenter"
)

var rootCmd = &cobra.Command{
	Use:   "caoforge",
	Short: "Scaffold npm projects and manage CLI Agent Orchestrator agents",
	Long: `caoforge scaffolds npm projects with standard tooling configuration and
manages a curated library of Markdown agent personas for the external
CLI Agent Orchestrator (cao).`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning("Invalid log level, using default")
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	config.Init()

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	bindPersistentFlags(rootCmd.PersistentFlags())
}

func bindPersistentFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
}

// loadConfig decodes the effective configuration or exits.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		presenter.Error(err, "Failed to load configuration")
		os.Exit(1)
	}
	return cfg
}

func main() {
	ctx := logger.WithLogger(context.Background(), logger.L)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
