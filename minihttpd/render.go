package minihttpd

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/render"
	"github.com/yext/minihttpd/response"
)

// ParseVars converts arguments of the form key=value into template variables
func ParseVars(args []string) (render.Vars, error) {
	vars := make(render.Vars)
	for _, arg := range args {
		separated := strings.SplitN(arg, "=", 2)
		if len(separated) != 2 || separated[0] == "" {
			return nil, errors.New("variables should be of the form '<key>=<value>'")
		}
		vars[separated[0]] = separated[1]
	}
	return vars, nil
}

// Render writes the response produced by the named template to w.
// An error is returned if the template did not produce a 200 response.
func (c *Client) Render(name string, vars render.Vars, w io.Writer) error {
	store, err := c.Store()
	if err != nil {
		return errors.WithStack(err)
	}
	resp := store.Render(name, vars)
	if _, err := io.WriteString(w, resp.String()+"\n"); err != nil {
		return errors.WithStack(err)
	}
	if resp.Status != response.StatusOK {
		return errors.Errorf("%s: %s", name, resp.Status)
	}
	return nil
}
