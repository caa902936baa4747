package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var followLog bool

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:     "log",
	Short:   "Display the access log",
	Aliases: []string{"tail"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return errors.WithStack(client.Log(ctx, followLog))
	},
}

func init() {
	RootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVarP(&followLog, "follow", "f", false, "Wait for new entries")
}
