package router

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/response"
)

// ErrMalformedRequest is returned when a request has no usable first line
var ErrMalformedRequest = errors.New("malformed request line")

// Handler produces a complete response for a bound path
type Handler func() response.Response

// Router maps literal paths to handlers.
// It should be fully populated before being handed to a server, and not
// modified afterwards.
type Router struct {
	routes map[string]Handler
}

// New creates an empty Router
func New() *Router {
	return &Router{
		routes: make(map[string]Handler),
	}
}

// Register binds handler to path, replacing any handler already bound to it.
func (r *Router) Register(path string, handler Handler) {
	r.routes[path] = handler
}

// Paths returns the registered paths in sorted order
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for path := range r.routes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Dispatch selects the handler for the raw request text and returns its response.
// The method is not considered: only the path takes part in the lookup.
func (r *Router) Dispatch(raw string) response.Response {
	_, path, err := ParseRequestLine(raw)
	if err != nil {
		return response.BadRequest()
	}
	handler, ok := r.routes[path]
	if !ok || handler == nil {
		return response.NotFound()
	}
	return handler()
}

// ParseRequestLine extracts the method and path from the first line of a raw
// request. Tokens after the path are ignored.
func ParseRequestLine(raw string) (method, path string, err error) {
	fields := strings.Fields(FirstLine(raw))
	if len(fields) < 2 {
		return "", "", ErrMalformedRequest
	}
	return fields[0], fields[1], nil
}

// FirstLine returns the first line of a raw request without its line ending
func FirstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimRight(raw, "\r")
}
