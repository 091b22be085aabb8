package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/agents"
	"github.com/caoforge/caoforge/pkg/config"
	"github.com/caoforge/caoforge/pkg/installer"
	"github.com/caoforge/caoforge/pkg/orchestrator"
	"github.com/caoforge/caoforge/pkg/presenter"
)

var caoCmd = &cobra.Command{
	Use:   "cao",
	Short: "Manage agents registered with the CLI Agent Orchestrator",
	Long: `Install, list, launch, and uninstall agents through the external cao
binary. The orchestrator owns the installed-agent directory; caoforge only
feeds agent files into it and reads what is there.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(caoCmd)
}

// newOrchestratorClient builds the production orchestrator client from config.
func newOrchestratorClient(cfg *config.Config) orchestrator.Client {
	return orchestrator.New(cfg.CaoBinary, cfg.ServerBinary)
}

// newInstaller builds an installer against the configured context directory.
func newInstaller(cfg *config.Config, client orchestrator.Client) *installer.Installer {
	inst, err := installer.New(cfg.ContextDir, client)
	if err != nil {
		presenter.Error(err, "Failed to initialize installer")
		os.Exit(1)
	}
	return inst
}

// newLibraryDiscovery returns the curated library plus any configured extra
// agent directories.
func newLibraryDiscovery(cfg *config.Config) *agents.Discovery {
	opts := []agents.Option{agents.WithBuiltinLibrary()}
	if len(cfg.AgentDirs) > 0 {
		opts = append(opts, agents.WithDirs(cfg.AgentDirs...))
	}

	discovery, err := agents.NewDiscovery(opts...)
	if err != nil {
		presenter.Error(err, "Failed to initialize agent discovery")
		os.Exit(1)
	}
	return discovery
}

// libraryAgents lists every agent in the curated library, exiting on failure.
func libraryAgents(discovery *agents.Discovery) []agents.Agent {
	list, err := discovery.Agents()
	if err != nil {
		presenter.Error(err, "Failed to discover agents")
		os.Exit(1)
	}
	return list
}
