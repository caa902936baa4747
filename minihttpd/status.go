package minihttpd

import (
	"github.com/pkg/errors"
	"github.com/yext/minihttpd/instance"
)

// Status displays the servers with instance files
func (c *Client) Status() error {
	instances, err := instance.LoadAll(c.DirConfig.PidDir)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(instances) == 0 {
		c.UI.Infof("No servers running")
		return nil
	}

	var statuses []instance.Status
	for _, i := range instances {
		status, err := i.Status()
		if err != nil {
			c.Logger.Printf("Could not get status of pid %d: %v\n", i.Pid, err)
		}
		statuses = append(statuses, status)
	}
	c.UI.Status(statuses)
	return nil
}

// Stop interrupts running servers. If port is empty, every server with an
// instance file is stopped. Instance files for servers that are no longer
// running are removed.
func (c *Client) Stop(port string) error {
	instances, err := instance.LoadAll(c.DirConfig.PidDir)
	if err != nil {
		return errors.WithStack(err)
	}

	var matched int
	for _, i := range instances {
		if port != "" && i.Port() != port {
			continue
		}
		matched++

		err := i.Stop()
		if errors.Cause(err) == instance.ErrNotRunning {
			c.UI.Errorf("Server on %v is not running, removing stale instance file", i.Addr)
			if err := instance.Remove(c.DirConfig.PidDir, i.Addr); err != nil {
				return errors.WithStack(err)
			}
			continue
		}
		if err != nil {
			return errors.WithMessage(err, "could not stop server on "+i.Addr)
		}
		c.UI.Infof("Sent interrupt to server on %v (pid %d)", i.Addr, i.Pid)
	}

	if matched == 0 {
		if port != "" {
			return errors.Errorf("no server running on port %s", port)
		}
		c.UI.Infof("No servers running")
	}
	return nil
}
