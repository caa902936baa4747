package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var probeFlags = struct {
	addr    string
	workers int
	timeout time.Duration
}{}

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe [PATH...]",
	Short: "Request paths from a running server",
	Long: `Send a request line for each path to a running server and display the
status of each response. With no paths, every path of the site is requested.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.WithStack(client.Probe(probeFlags.addr, args, probeFlags.workers, probeFlags.timeout))
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVarP(&probeFlags.addr, "addr", "a", "", "Address of the server, defaults to the configured address")
	probeCmd.Flags().IntVarP(&probeFlags.workers, "workers", "n", 4, "Number of requests to make in parallel")
	probeCmd.Flags().DurationVar(&probeFlags.timeout, "timeout", 5*time.Second, "Timeout for each request")
}
