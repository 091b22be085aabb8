package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Install every project-local agent into the orchestrator",
	Long: `Run 'cao install' for every .md file under the project's .cao/agents
directory, including nested ones. Per-file failures are counted, not fatal.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		root, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}

		cfg := loadConfig()
		client := newOrchestratorClient(cfg)
		inst := newInstaller(cfg, client)

		dir := localAgentsDir(root)
		summary := inst.Sync(ctx, dir)

		if summary.Attempted() == 0 && summary.Errors == nil {
			presenter.Info(fmt.Sprintf("No agents found under %s", dir))
			return
		}

		reportSummary(summary)
	},
}

func init() {
	caoCmd.AddCommand(caoSyncCmd)
}
