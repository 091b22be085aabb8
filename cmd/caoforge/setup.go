package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/presenter"
	"github.com/caoforge/caoforge/pkg/scaffold"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Add standard tooling to an existing project",
	Long: `Write only the tooling files the project is missing. An existing
package.json is merged: your scripts and dependencies are preserved and the
standard ones are added alongside. Other existing files are never touched;
when they differ from the generated content a diff is shown for reference.`,
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
				fmt.Sprintf("Set up standard tooling in %s? Existing files are kept", root),
				"y", "N")
			if !isAffirmative(answer) {
				presenter.Info("Aborted")
				return
			}
		}

		result, err := scaffold.Setup(ctx, root, projectName)
		if err != nil {
			presenter.Error(err, "Setup failed")
			os.Exit(1)
		}

		for _, file := range result.Written {
			presenter.Success(fmt.Sprintf("Wrote %s", file))
		}
		for _, file := range result.Merged {
			presenter.Success(fmt.Sprintf("Merged %s", file))
		}
		for _, file := range result.Skipped {
			presenter.Warning(fmt.Sprintf("Kept existing %s", file))
		}

		for file, diff := range result.Diffs {
			presenter.Separator()
			presenter.Info(fmt.Sprintf("%s differs from the generated version:", file))
			presenter.Info(diff)
		}
	},
}

func init() {
	setupCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	setupCmd.Flags().String("name", "", "Project name (defaults to the directory name)")
	rootCmd.AddCommand(setupCmd)
}
