package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caoforge/caoforge/pkg/presenter"
	"github.com/caoforge/caoforge/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()

		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(info.Version)
			return
		}

		out, err := info.JSON()
		if err != nil {
			presenter.Error(err, "Failed to encode version info")
			return
		}
		fmt.Println(out)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
