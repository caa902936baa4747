// Package probe sends single requests to a running server and reports the
// status line of each response.
package probe

import (
	"fmt"
	"io/ioutil"
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/response"
	"github.com/yext/minihttpd/worker"
)

// Defaults applied to zero-valued Prober fields
const (
	DefaultMethod  = "GET"
	DefaultTimeout = 5 * time.Second
	DefaultWorkers = 4
)

// Result is the outcome of requesting a single path
type Result struct {
	Path    string
	Status  string
	Body    string
	Elapsed time.Duration
	Err     error
}

// Code returns the numeric status code, 0 if the request failed
func (r Result) Code() int {
	return response.StatusCode(r.Status)
}

// Prober requests paths from the server at Addr
type Prober struct {
	Addr    string
	Method  string
	Timeout time.Duration
	Workers int
}

func (p *Prober) method() string {
	if p.Method == "" {
		return DefaultMethod
	}
	return p.Method
}

func (p *Prober) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}

// Run requests every path using a pool of workers.
// Results are returned in the same order as paths, along with the error of
// each request that failed.
func (p *Prober) Run(paths []string) ([]Result, []error) {
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(paths))
	pool := worker.NewPool(workers)
	pool.Start()
	var errs []error
	for i, path := range paths {
		i, path := i, path
		err := pool.Enqueue(func() error {
			results[i] = p.Fetch(path)
			return results[i].Err
		})
		if err != nil {
			results[i] = Result{Path: path, Err: errors.WithMessage(err, path)}
			errs = append(errs, results[i].Err)
		}
	}
	pool.Stop()
	<-pool.Complete()
	return results, append(errs, pool.Errors()...)
}

// Fetch sends a single request for path and reads the response until the
// server closes the connection.
func (p *Prober) Fetch(path string) Result {
	start := time.Now()
	result := Result{Path: path}

	raw, err := p.roundTrip(path)
	result.Elapsed = time.Since(start)
	if err != nil {
		result.Err = errors.WithMessage(err, path)
		return result
	}

	result.Status = response.ParseStatusLine(raw)
	result.Body = body(raw)
	if result.Status == "" {
		result.Err = errors.Errorf("%s: no status line in response", path)
	}
	return result
}

func (p *Prober) roundTrip(path string) (string, error) {
	conn, err := net.DialTimeout("tcp", p.Addr, p.timeout())
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(p.timeout())); err != nil {
		return "", errors.WithStack(err)
	}

	request := fmt.Sprintf("%s %s HTTP/1.1\r\nHost: %s\r\nConnection: close\r\n\r\n", p.method(), path, p.Addr)
	if _, err := conn.Write([]byte(request)); err != nil {
		return "", errors.WithStack(err)
	}

	out, err := ioutil.ReadAll(conn)
	if err != nil && len(out) == 0 {
		return "", errors.WithStack(err)
	}
	return string(out), nil
}

// body returns everything after the first blank line, accepting either
// line ending style.
func body(raw string) string {
	lf := strings.Index(raw, "\n\n")
	crlf := strings.Index(raw, "\r\n\r\n")
	switch {
	case lf < 0 && crlf < 0:
		return ""
	case crlf < 0 || (lf >= 0 && lf < crlf):
		return raw[lf+2:]
	default:
		return raw[crlf+4:]
	}
}
