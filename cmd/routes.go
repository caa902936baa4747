package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:     "routes",
	Short:   "List the paths served by the site",
	Aliases: []string{"list"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.WithStack(client.Routes())
	},
}

func init() {
	RootCmd.AddCommand(routesCmd)
}
