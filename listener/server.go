// Package listener implements a sequential accept-read-dispatch-write loop.
// Exactly one connection is handled at a time: it is read once, answered and
// closed before the next connection is accepted.
package listener

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/accesslog"
	"github.com/yext/minihttpd/common"
	"github.com/yext/minihttpd/response"
	"github.com/yext/minihttpd/router"
)

// Defaults applied to zero-valued Server fields
const (
	DefaultAddr          = "127.0.0.1:8080"
	DefaultBufferSize    = 1024
	DefaultAcceptTimeout = time.Second

	minAcceptRetryDelay = 5 * time.Millisecond
	maxAcceptRetryDelay = time.Second
)

// Dispatcher produces the response for the text of a request
type Dispatcher interface {
	Dispatch(raw string) response.Response
}

// DispatcherFunc adapts an ordinary function to the Dispatcher interface
type DispatcherFunc func(raw string) response.Response

// Dispatch calls f(raw)
func (f DispatcherFunc) Dispatch(raw string) response.Response {
	return f(raw)
}

var _ Dispatcher = &router.Router{}

// Server accepts and answers connections one at a time.
type Server struct {
	// Address to listen on, host:port
	Addr string
	// Maximum number of bytes read from each connection
	BufferSize int
	// How long a single Accept call may block before the context is checked again
	AcceptTimeout time.Duration
	// Optional deadline for reading a request, zero for none
	ReadTimeout time.Duration

	Dispatcher Dispatcher

	// Diagnostic output for each phase of a connection
	Logger common.Logger
	// Optional, records every handled connection
	AccessLog *accesslog.Writer

	// Called with the bound address once the server is listening
	OnListen func(addr net.Addr)
}

// ListenAndServe binds the server address and serves until ctx is cancelled.
// A failure to bind is returned immediately.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WithMessage(err, "could not listen on "+addr)
	}
	common.MaskLogger(s.Logger).Printf("Server started on %v\n", ln.Addr())
	if s.OnListen != nil {
		s.OnListen(ln.Addr())
	}
	return errors.WithStack(s.Serve(ctx, ln))
}

type deadlineSetter interface {
	SetDeadline(t time.Time) error
}

// Serve accepts connections on ln until ctx is cancelled, then closes ln.
// The connection in progress when ctx is cancelled is completed first.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := common.MaskLogger(s.Logger)

	var closeOnce sync.Once
	closeListener := func() {
		closeOnce.Do(func() {
			if err := ln.Close(); err != nil {
				logger.Printf("Error closing listener: %v\n", err)
			}
		})
	}
	defer closeListener()

	acceptTimeout := s.AcceptTimeout
	if acceptTimeout == 0 {
		acceptTimeout = DefaultAcceptTimeout
	}

	deadlines, canSetDeadline := ln.(deadlineSetter)
	if !canSetDeadline {
		// Without deadlines, Accept is only interrupted by closing the listener
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-ctx.Done():
				closeListener()
			case <-stop:
			}
		}()
	}

	var retryDelay time.Duration // how long to sleep on accept failure
	for {
		select {
		case <-ctx.Done():
			logger.Printf("Server is shutting down\n")
			return nil
		default:
		}

		if canSetDeadline && acceptTimeout > 0 {
			if err := deadlines.SetDeadline(time.Now().Add(acceptTimeout)); err != nil {
				logger.Printf("Could not set accept deadline: %v\n", err)
			}
		}

		conn, err := ln.Accept()
		if err != nil {
			if isTimeout(err) {
				continue
			}
			if ctx.Err() != nil {
				logger.Printf("Server is shutting down\n")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return errors.WithStack(err)
			}
			if retryDelay == 0 {
				retryDelay = minAcceptRetryDelay
			} else {
				retryDelay *= 2
			}
			if retryDelay > maxAcceptRetryDelay {
				retryDelay = maxAcceptRetryDelay
			}
			logger.Printf("Error accepting connection: %v; retrying in %v\n", err, retryDelay)
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
			continue
		}
		retryDelay = 0
		s.handle(conn)
	}
}

func isTimeout(err error) bool {
	netErr, ok := err.(net.Error)
	return ok && netErr.Timeout()
}

func (s *Server) handle(conn net.Conn) {
	logger := common.MaskLogger(s.Logger)
	start := time.Now()

	remote := "unknown"
	if addr := conn.RemoteAddr(); addr != nil {
		remote = addr.String()
	}
	entry := accesslog.Entry{
		Time:   start,
		Remote: remote,
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Printf("Error closing connection from %v: %v\n", remote, err)
		}
		s.record(entry, start)
	}()

	logger.Printf("Connection from %v\n", remote)

	raw, err := s.read(conn)
	if err != nil {
		logger.Printf("Error reading from %v: %v\n", remote, err)
		entry.Error = err.Error()
		return
	}
	logger.Printf("Request:\n%v\n", raw)
	entry.RequestLine = router.FirstLine(raw)

	resp := s.dispatch(raw)
	out := resp.Bytes()
	logger.Printf("Response:\n%s\n", out)
	entry.Status = resp.Status

	n, err := conn.Write(out)
	entry.Bytes = n
	if err != nil {
		logger.Printf("Error writing to %v: %v\n", remote, err)
		entry.Error = err.Error()
	}
}

// read performs a single bounded read and decodes it as UTF-8, replacing
// invalid bytes.
func (s *Server) read(conn net.Conn) (string, error) {
	size := s.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	if s.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return "", errors.WithStack(err)
		}
	}

	buf := make([]byte, size)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		return "", errors.WithStack(err)
	}
	return strings.ToValidUTF8(string(buf[:n]), "�"), nil
}

func (s *Server) dispatch(raw string) (resp response.Response) {
	defer func() {
		if r := recover(); r != nil {
			common.MaskLogger(s.Logger).Printf("Recovered from panic in handler: %v\n", r)
			resp = response.InternalError()
		}
	}()
	if s.Dispatcher == nil {
		return response.NotFound()
	}
	return s.Dispatcher.Dispatch(raw)
}

func (s *Server) record(entry accesslog.Entry, start time.Time) {
	if s.AccessLog == nil {
		return
	}
	entry.Duration = time.Since(start)
	if err := s.AccessLog.Record(entry); err != nil {
		common.MaskLogger(s.Logger).Printf("Error writing access log: %v\n", err)
	}
}
