package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/presenter"
	"github.com/caoforge/caoforge/pkg/scaffold"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Scaffold a brand-new npm project in the current directory",
	Long: `Write the full tooling configuration set (package.json, tsconfig.json,
linter, test runner, git hook, ignore files) into the current directory,
overwriting any existing files. For existing projects use 'setup' instead.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		yes, _ := cmd.Flags().GetBool("yes")

		root, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}
		projectName := projectNameFlagOrDefault(cmd, root)

		if !yes {
			answer := presenter.Prompt(
				fmt.Sprintf("This will write %d files into %s, overwriting existing ones. Continue?", len(scaffold.Files(projectName)), root),
				"y", "N")
			if !isAffirmative(answer) {
				presenter.Info("Aborted")
				return
			}
		}

		result, err := scaffold.Bootstrap(ctx, root, projectName)
		if err != nil {
			presenter.Error(err, "Bootstrap failed")
			os.Exit(1)
		}

		for _, file := range result.Written {
			presenter.Success(fmt.Sprintf("Wrote %s", file))
		}
		presenter.Info(fmt.Sprintf("Project '%s' scaffolded with %d files", projectName, len(result.Written)))
	},
}

func init() {
	bootstrapCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	bootstrapCmd.Flags().String("name", "", "Project name (defaults to the directory name)")
	rootCmd.AddCommand(bootstrapCmd)
}

func projectNameFlagOrDefault(cmd *cobra.Command, root string) string {
	if name, err := cmd.Flags().GetString("name"); err == nil && name != "" {
		return name
	}
	return filepath.Base(root)
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
