package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yext/minihttpd/minihttpd"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE [KEY=VALUE...]",
	Short: "Print the response a template produces",
	Long: `Render a template from the template directory with the given variables
and print the full response, as it would be sent to a client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("a template name is required")
		}
		vars, err := minihttpd.ParseVars(args[1:])
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(client.Render(args[0], vars, os.Stdout))
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)
}
