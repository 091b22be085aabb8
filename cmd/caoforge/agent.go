package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/agents"
	"github.com/caoforge/caoforge/pkg/presenter"
	"github.com/caoforge/caoforge/pkg/templates"
)

// AgentCreateConfig holds the resolved inputs for agent creation.
type AgentCreateConfig struct {
	Yes       bool
	Template  string
	Name      string
	TechStack string
	Structure string
}

func NewAgentCreateConfig() *AgentCreateConfig {
	return &AgentCreateConfig{
		Template:  "orchestrator",
		TechStack: "TypeScript, Node.js",
		Structure: "src/\ntests/",
	}
}

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage project-local agents",
	Long:  `Create, list, and remove agent files under the project's .cao/agents directory.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var agentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project agent from a template",
	Long: `Instantiate a template into .cao/agents/<name>.md, substituting the
project name, path, tech stack, and structure placeholders. Prompts for
missing values unless --yes is given.

Examples:
  caoforge agent create
  caoforge agent create -y -t specialist
  caoforge agent create --tech-stack "Go, PostgreSQL"`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		config := getAgentCreateConfigFromFlags(cmd)

		root, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}

		projectName := projectNameFlagOrDefault(cmd, root)

		if !config.Yes {
			if answer := presenter.Prompt(fmt.Sprintf("Project name [%s]", projectName)); answer != "" {
				projectName = answer
			}
			if answer := presenter.Prompt(fmt.Sprintf("Tech stack [%s]", config.TechStack)); answer != "" {
				config.TechStack = answer
			}
			if answer := presenter.Prompt(fmt.Sprintf("Project structure [%s]", config.Structure)); answer != "" {
				config.Structure = answer
			}
		}

		if config.Name == "" {
			config.Name = projectName + "-" + config.Template
		}

		processor, err := templates.NewProcessor()
		if err != nil {
			presenter.Error(err, "Failed to initialize template processor")
			os.Exit(1)
		}

		dest, err := processor.Instantiate(ctx, root, config.Name, config.Template, templates.Vars{
			templates.TokenProjectName:      projectName,
			templates.TokenProjectPath:      root,
			templates.TokenTechStack:        config.TechStack,
			templates.TokenProjectStructure: config.Structure,
		})
		if err != nil {
			presenter.Error(err, "Failed to create agent")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Created agent '%s' at %s", config.Name, dest))
		presenter.Info("Install it with: caoforge cao sync")
	},
}

var agentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project-local agents",
	Run: func(_ *cobra.Command, _ []string) {
		root, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}

		discovery, err := agents.NewDiscovery(agents.WithDirs(localAgentsDir(root)))
		if err != nil {
			presenter.Error(err, "Failed to initialize agent discovery")
			os.Exit(1)
		}

		list, err := discovery.Agents()
		if err != nil {
			presenter.Error(err, "Failed to list agents")
			os.Exit(1)
		}

		if len(list) == 0 {
			presenter.Info("No local agents. Create one with: caoforge agent create")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDESCRIPTION\tPATH")
		fmt.Fprintln(tw, "----\t-----------\t----")
		for _, agent := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", agent.Name, truncate(agent.Description, 60), agent.Path)
		}
		tw.Flush()
	},
}

var agentRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project-local agent",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		name := args[0]

		root, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}

		path := filepath.Join(localAgentsDir(root), name+".md")
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				presenter.Error(errors.Errorf("agent '%s' not found in %s", name, localAgentsDir(root)), "Agent not found")
			} else {
				presenter.Error(err, fmt.Sprintf("Failed to remove agent '%s'", name))
			}
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Removed agent '%s'", name))
	},
}

func init() {
	defaults := NewAgentCreateConfig()
	agentCreateCmd.Flags().BoolP("yes", "y", defaults.Yes, "Skip interactive prompts")
	agentCreateCmd.Flags().StringP("template", "t", defaults.Template, "Template to instantiate")
	agentCreateCmd.Flags().String("agent-name", "", "Agent file name (defaults to <project>-<template>)")
	agentCreateCmd.Flags().String("name", "", "Project name (defaults to the directory name)")
	agentCreateCmd.Flags().String("tech-stack", defaults.TechStack, "Project tech stack")
	agentCreateCmd.Flags().String("structure", defaults.Structure, "Project folder layout")

	agentCmd.AddCommand(agentCreateCmd)
	agentCmd.AddCommand(agentListCmd)
	agentCmd.AddCommand(agentRemoveCmd)
	rootCmd.AddCommand(agentCmd)
}

func getAgentCreateConfigFromFlags(cmd *cobra.Command) *AgentCreateConfig {
	config := NewAgentCreateConfig()
	if yes, err := cmd.Flags().GetBool("yes"); err == nil {
		config.Yes = yes
	}
	if template, err := cmd.Flags().GetString("template"); err == nil && template != "" {
		config.Template = template
	}
	if name, err := cmd.Flags().GetString("agent-name"); err == nil {
		config.Name = name
	}
	if stack, err := cmd.Flags().GetString("tech-stack"); err == nil && stack != "" {
		config.TechStack = stack
	}
	if structure, err := cmd.Flags().GetString("structure"); err == nil && structure != "" {
		config.Structure = structure
	}
	return config
}

// localAgentsDir is the project-local agent directory.
func localAgentsDir(root string) string {
	return filepath.Join(root, ".cao", "agents")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
