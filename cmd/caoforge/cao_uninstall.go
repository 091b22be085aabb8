package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoUninstallCmd = &cobra.Command{
	Use:   "uninstall <agent>",
	Short: "Remove an agent from the orchestrator",
	Long: `Delete the agent's file from the orchestrator's agent-context directory.
The orchestrator exposes no uninstall operation, so the file is removed
directly.`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		name := args[0]

		cfg := loadConfig()
		inst := newInstaller(cfg, newOrchestratorClient(cfg))

		if err := inst.Uninstall(name); err != nil {
			presenter.Error(err, "Uninstall failed")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Uninstalled agent '%s'", name))
	},
}

func init() {
	caoCmd.AddCommand(caoUninstallCmd)
}
