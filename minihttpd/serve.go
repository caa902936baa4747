package minihttpd

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/accesslog"
	"github.com/yext/minihttpd/common"
	"github.com/yext/minihttpd/instance"
	"github.com/yext/minihttpd/listener"
	"github.com/yext/minihttpd/pages"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Serve runs the site until ctx is cancelled.
// While running, the server is recorded in an instance file so that it can be
// found by Status and Stop.
func (c *Client) Serve(ctx context.Context) error {
	cfg := c.Config

	store, err := c.Store()
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := os.Stat(store.Dir()); os.IsNotExist(err) {
		c.Logger.Printf("Template directory %v does not exist\n", store.Dir())
		c.UI.Errorf("Template directory %v does not exist, template pages will not be found", store.Dir())
	} else if cfg.WatchTemplates {
		closeWatch, err := store.Watch()
		if err != nil {
			return errors.WithMessage(err, "could not watch templates")
		}
		defer closeWatch()
	}
	r := pages.NewRouter(store, cfg.Site)

	server := &listener.Server{
		Addr:          cfg.Addr(),
		BufferSize:    cfg.BufferSize,
		AcceptTimeout: cfg.AcceptTimeout,
		ReadTimeout:   cfg.ReadTimeout,
		Dispatcher:    r,
		Logger:        common.MaskLogger(c.Console),
	}

	var accessLogFile string
	if cfg.AccessLog {
		accessLogFile = c.DirConfig.AccessLog()
		out := &lumberjack.Logger{
			Filename:   accessLogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 30,
			MaxAge:     1, //days
		}
		defer out.Close()
		server.AccessLog = accesslog.NewWriter(out)
	}

	var boundAddr string
	server.OnListen = func(addr net.Addr) {
		boundAddr = addr.String()
		err := instance.Save(c.DirConfig.PidDir, instance.Instance{
			Pid:        os.Getpid(),
			Addr:       boundAddr,
			Command:    c.Command,
			StartTime:  time.Now(),
			ConfigFile: c.ConfigFile,
			AccessLog:  accessLogFile,
		})
		if err != nil {
			c.Logger.Printf("Could not save instance file: %v\n", err)
		}
		c.UI.Infof("Serving on %v", boundAddr)
	}
	defer func() {
		if boundAddr == "" {
			return
		}
		if err := instance.Remove(c.DirConfig.PidDir, boundAddr); err != nil {
			c.Logger.Printf("Could not remove instance file: %v\n", err)
		}
	}()

	c.Logger.Printf("Starting server on %v\n", server.Addr)
	err = server.ListenAndServe(ctx)
	if server.AccessLog != nil {
		c.Logger.Printf("Served %d connections\n", server.AccessLog.Len())
	}
	return errors.WithStack(err)
}
