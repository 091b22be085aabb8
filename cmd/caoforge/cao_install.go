package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/agents"
	"github.com/caoforge/caoforge/pkg/installer"
	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoInstallCmd = &cobra.Command{
	Use:   "install [agent...]",
	Short: "Install curated agents into the orchestrator",
	Long: `Install agents from the curated library by running 'cao install' for each
one. With no arguments the whole library is installed. One agent failing does
not stop the rest; the command reports how many succeeded and failed.

Examples:
  caoforge cao install
  caoforge cao install react-engineer code-reviewer
  caoforge cao install --cao-only`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		caoOnly, _ := cmd.Flags().GetBool("cao-only")
		agentsOnly, _ := cmd.Flags().GetBool("agents-only")

		cfg := loadConfig()

		if !agentsOnly {
			if _, err := exec.LookPath(cfg.CaoBinary); err != nil {
				presenter.Error(errors.Errorf("'%s' not found in PATH", cfg.CaoBinary),
					"The CLI Agent Orchestrator must be installed first")
				os.Exit(1)
			}
			presenter.Success(fmt.Sprintf("Found orchestrator binary '%s'", cfg.CaoBinary))
		}

		if caoOnly {
			return
		}

		discovery := newLibraryDiscovery(cfg)

		var toInstall []agents.Agent
		if len(args) == 0 {
			toInstall = libraryAgents(discovery)
		} else {
			for _, name := range args {
				agent, err := discovery.Get(name)
				if err != nil {
					presenter.Error(err, "Unknown agent")
					os.Exit(1)
				}
				toInstall = append(toInstall, agent)
			}
		}

		if len(toInstall) == 0 {
			presenter.Info("No agents to install")
			return
		}

		client := newOrchestratorClient(cfg)
		inst := newInstaller(cfg, client)

		summary := inst.InstallAgents(ctx, toInstall)
		reportSummary(summary)
	},
}

func init() {
	caoInstallCmd.Flags().Bool("cao-only", false, "Only verify the orchestrator binary, install no agents")
	caoInstallCmd.Flags().Bool("agents-only", false, "Skip the orchestrator binary check")
	caoCmd.AddCommand(caoInstallCmd)
}

// reportSummary prints a bulk-operation outcome and exits non-zero when
// anything failed.
func reportSummary(summary installer.Summary) {
	presenter.Info(fmt.Sprintf("%d installed, %d failed (%d attempted)",
		summary.Installed, summary.Failed, summary.Attempted()))

	if summary.Errors != nil {
		presenter.Error(summary.Errors, "Some agents failed")
		os.Exit(1)
	}
}
