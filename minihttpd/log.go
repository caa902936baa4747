package minihttpd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/accesslog"
	"github.com/yext/minihttpd/common"
)

// Log displays the access log. With follow set, new entries are displayed as
// they are written until ctx is cancelled.
func (c *Client) Log(ctx context.Context, follow bool) error {
	path := c.DirConfig.AccessLog()

	if !follow {
		entries, err := accesslog.ReadAll(path)
		if err != nil {
			return errors.WithStack(err)
		}
		ch := make(chan accesslog.Entry, len(entries))
		for _, entry := range entries {
			ch <- entry
		}
		close(ch)
		<-c.UI.ShowLog(ch)
		return nil
	}

	follower := accesslog.NewFollower(path)
	follower.Logger = common.PrefixLogger("access log: ", c.Logger)
	done := c.UI.ShowLog(follower.Start())
	<-ctx.Done()
	follower.Stop()
	<-done
	return nil
}
