// Package response builds the minimal HTTP-like responses written back to
// clients. Responses always close the connection and carry no Content-Length:
// the end of the body is signalled by the server closing the socket.
package response

import (
	"strconv"
	"strings"
)

// Protocol is the version prefix written on every status line
const Protocol = "HTTP/1.1"

// Status lines used by the server
const (
	StatusOK            = "200 OK"
	StatusBadRequest    = "400 Bad Request"
	StatusNotFound      = "404 Not Found"
	StatusInternalError = "500 Internal Server Error"
)

// DefaultContentType is used when no content type is given to New
const DefaultContentType = "text/html"

// Response is a complete reply to a single request.
type Response struct {
	Status      string
	ContentType string
	Body        string
}

// Option customizes a Response built by New
type Option func(*Response)

// WithStatus overrides the default "200 OK" status
func WithStatus(status string) Option {
	return func(r *Response) {
		r.Status = status
	}
}

// WithContentType overrides the default "text/html" content type
func WithContentType(contentType string) Option {
	return func(r *Response) {
		r.ContentType = contentType
	}
}

// New creates a Response with the given body.
func New(body string, opts ...Option) Response {
	r := Response{
		Status:      StatusOK,
		ContentType: DefaultContentType,
		Body:        body,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NotFound is returned for unknown paths and missing templates
func NotFound() Response {
	return New("<p>404 Страница не найдена</p>", WithStatus(StatusNotFound))
}

// BadRequest is returned when the request line cannot be parsed
func BadRequest() Response {
	return New("<p>400 Некорректный запрос</p>", WithStatus(StatusBadRequest))
}

// InternalError is returned when a handler fails unexpectedly
func InternalError() Response {
	return New("<p>500 Внутренняя ошибка сервера</p>", WithStatus(StatusInternalError))
}

// String renders the response in wire form.
// Lines end with a bare "\n" rather than "\r\n".
func (r Response) String() string {
	var b strings.Builder
	b.WriteString(Protocol)
	b.WriteString(" ")
	b.WriteString(r.Status)
	b.WriteString("\nContent-Type: ")
	b.WriteString(r.ContentType)
	b.WriteString("; charset=utf-8\nConnection: close\n\n")
	b.WriteString(r.Body)
	return b.String()
}

// Bytes returns the UTF-8 encoded wire form of the response
func (r Response) Bytes() []byte {
	return []byte(r.String())
}

// Code returns the numeric status code, or 0 if the status does not begin
// with one.
func (r Response) Code() int {
	return StatusCode(r.Status)
}

// StatusCode extracts the leading numeric code from a status such as
// "404 Not Found". It returns 0 when there is none.
func StatusCode(status string) int {
	fields := strings.Fields(status)
	if len(fields) == 0 {
		return 0
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return code
}

// ParseStatusLine returns the status portion of a raw response, i.e. the
// first line with the protocol version removed.
func ParseStatusLine(raw string) string {
	line := raw
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(line, "\r")
	if strings.HasPrefix(line, "HTTP/") {
		if i := strings.IndexByte(line, ' '); i >= 0 {
			return strings.TrimSpace(line[i+1:])
		}
		return ""
	}
	return strings.TrimSpace(line)
}
