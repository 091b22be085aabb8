package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/orchestrator"
	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoLaunchCmd = &cobra.Command{
	Use:   "launch <agent>",
	Short: "Launch an interactive session with an installed agent",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newOrchestratorClient(cfg)

		if err := client.Launch(cmd.Context(), args[0]); err != nil {
			exitWithProcessError(err, fmt.Sprintf("Failed to launch agent '%s'", args[0]))
		}
	},
}

var caoServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the orchestrator server in the foreground",
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := loadConfig()
		client := newOrchestratorClient(cfg)

		if err := client.Serve(cmd.Context()); err != nil {
			exitWithProcessError(err, "Orchestrator server exited with an error")
		}
	},
}

func init() {
	caoCmd.AddCommand(caoLaunchCmd)
	caoCmd.AddCommand(caoServerCmd)
}

// exitWithProcessError reports a subprocess failure and exits with its code
// when available, 1 otherwise.
func exitWithProcessError(err error, context string) {
	presenter.Error(err, context)

	var exitErr *orchestrator.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}
