package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yext/minihttpd/common"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the currently installed version of minihttpd",
	// Skip loading config
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%v version %v\n", common.Name, common.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
