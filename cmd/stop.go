package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var stopPort string

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop running servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.WithStack(client.Stop(stopPort))
	},
}

func init() {
	RootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVarP(&stopPort, "port", "p", "", "Only stop the server listening on `PORT`")
}
