package minihttpd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/probe"
)

// Probe requests each path from the server at addr and displays the results.
// When no paths are given, every path of the site is requested.
// An error is returned if any request failed.
func (c *Client) Probe(addr string, paths []string, workers int, timeout time.Duration) error {
	if addr == "" {
		addr = c.Config.Addr()
	}
	if len(paths) == 0 {
		r, err := c.Router()
		if err != nil {
			return errors.WithStack(err)
		}
		paths = r.Paths()
	}

	p := &probe.Prober{
		Addr:    addr,
		Workers: workers,
		Timeout: timeout,
	}
	results, errs := p.Run(paths)
	c.UI.ProbeResults(results)

	for _, err := range errs {
		c.Logger.Printf("Request failed: %v\n", err)
		c.UI.Errorf("%v", err)
	}
	if len(errs) > 0 {
		return errors.Errorf("%d of %d requests failed", len(errs), len(results))
	}
	return nil
}
