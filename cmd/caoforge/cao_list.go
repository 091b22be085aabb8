package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/agents"
	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List curated agents grouped by category",
	Long: `List the agents in the curated library (plus any configured extra agent
directories), grouped by category/subcategory. With --installed, only agents
currently registered with the orchestrator are shown.`,
	Run: func(cmd *cobra.Command, _ []string) {
		installedOnly, _ := cmd.Flags().GetBool("installed")

		cfg := loadConfig()
		discovery := newLibraryDiscovery(cfg)
		list := libraryAgents(discovery)

		if installedOnly {
			inst := newInstaller(cfg, newOrchestratorClient(cfg))
			installed, err := inst.Installed()
			if err != nil {
				presenter.Error(err, "Failed to read installed agents")
				os.Exit(1)
			}
			list = filterInstalled(list, installed)
		}

		if len(list) == 0 {
			if installedOnly {
				presenter.Info("No agents installed")
			} else {
				presenter.Info("No agents found")
			}
			return
		}

		printGrouped(list)
	},
}

func init() {
	caoListCmd.Flags().Bool("installed", false, "Show only agents registered with the orchestrator")
	caoCmd.AddCommand(caoListCmd)
}

// filterInstalled keeps agents whose name appears in the installed set.
func filterInstalled(list []agents.Agent, installed map[string]bool) []agents.Agent {
	var out []agents.Agent
	for _, agent := range list {
		if installed[agent.Name] {
			out = append(out, agent)
		}
	}
	return out
}

func printGrouped(list []agents.Agent) {
	groups := agents.GroupByCategory(list)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		heading := key
		if heading == "" {
			heading = "(uncategorized)"
		}
		fmt.Fprintf(tw, "%s\n", heading)
		for _, agent := range groups[key] {
			fmt.Fprintf(tw, "  %s\t%s\n", agent.Name, truncate(agent.Description, 70))
		}
	}
	tw.Flush()
}
