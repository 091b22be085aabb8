package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installed-agent counts and server state",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		cfg := loadConfig()
		client := newOrchestratorClient(cfg)
		inst := newInstaller(cfg, client)
		discovery := newLibraryDiscovery(cfg)

		report, err := inst.Status(libraryAgents(discovery))
		if err != nil {
			presenter.Error(err, "Failed to determine agent status")
			os.Exit(1)
		}

		presenter.Section("Agent Status")
		presenter.Info(fmt.Sprintf("Installed: %d, Not installed: %d",
			len(report.Installed), len(report.NotInstalled)))

		for _, agent := range report.Installed {
			presenter.Success(agent.Name)
		}
		for _, agent := range report.NotInstalled {
			presenter.Info(fmt.Sprintf("  %s (not installed)", agent.Name))
		}

		presenter.Separator()
		running, err := client.ServerRunning(ctx)
		if err != nil {
			presenter.Warning(fmt.Sprintf("Could not check server state: %v", err))
			return
		}
		if running {
			presenter.Success(fmt.Sprintf("%s is running", cfg.ServerBinary))
		} else {
			presenter.Info(fmt.Sprintf("%s is not running (start it with: caoforge cao server)", cfg.ServerBinary))
		}
	},
}

func init() {
	caoCmd.AddCommand(caoStatusCmd)
}
