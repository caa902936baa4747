package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yext/minihttpd/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out io.Writer = os.Stdout
		if !redirectLogs {
			out = io.MultiWriter(os.Stdout, log.Writer())
		}
		client.Console = log.New(out, "", log.Ltime)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return errors.WithStack(client.Serve(ctx))
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("host", "", "Interface to listen on")
	flags.IntP("port", "p", 0, "Port to listen on")
	flags.Int("buffer-size", 0, "Maximum number of request bytes read from each connection")
	flags.Duration("accept-timeout", 0, "How long to wait for a connection before checking for shutdown")
	flags.Duration("read-timeout", 0, "How long to wait for a request on an accepted connection")
	flags.String("template-dir", "", "Directory containing page templates")
	flags.BoolP("watch", "w", false, "Reload templates when they change")
	flags.Bool("access-log", false, "Record each connection in the access log")

	bindings := map[string]string{
		"host":           config.KeyHost,
		"port":           config.KeyPort,
		"buffer-size":    config.KeyBufferSize,
		"accept-timeout": config.KeyAcceptTimeout,
		"read-timeout":   config.KeyReadTimeout,
		"template-dir":   config.KeyTemplateDir,
		"watch":          config.KeyWatchTemplates,
		"access-log":     config.KeyAccessLog,
	}
	for flag, key := range bindings {
		if err := settings.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}
