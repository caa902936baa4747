package response

import (
	"testing"

	"github.com/theothertomelliott/must"
)

func TestNew(t *testing.T) {
	var tests = []struct {
		name     string
		body     string
		opts     []Option
		expected string
	}{
		{
			name:     "defaults",
			body:     "<h1>hi</h1>",
			expected: "HTTP/1.1 200 OK\nContent-Type: text/html; charset=utf-8\nConnection: close\n\n<h1>hi</h1>",
		},
		{
			name:     "custom status",
			body:     "gone",
			opts:     []Option{WithStatus(StatusNotFound)},
			expected: "HTTP/1.1 404 Not Found\nContent-Type: text/html; charset=utf-8\nConnection: close\n\ngone",
		},
		{
			name:     "custom content type",
			body:     "",
			opts:     []Option{WithContentType("image/x-icon")},
			expected: "HTTP/1.1 200 OK\nContent-Type: image/x-icon; charset=utf-8\nConnection: close\n\n",
		},
		{
			name:     "body is not escaped",
			body:     "a\nb: c",
			expected: "HTTP/1.1 200 OK\nContent-Type: text/html; charset=utf-8\nConnection: close\n\na\nb: c",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := New(test.body, test.opts...)
			must.BeEqual(t, test.expected, got.String())
			must.BeEqual(t, []byte(test.expected), got.Bytes())
		})
	}
}

func TestCannedResponses(t *testing.T) {
	must.BeEqual(t, 404, NotFound().Code())
	must.BeEqual(t, "<p>404 Страница не найдена</p>", NotFound().Body)
	must.BeEqual(t, 400, BadRequest().Code())
	must.BeEqual(t, 500, InternalError().Code())
}

func TestStatusCode(t *testing.T) {
	must.BeEqual(t, 200, StatusCode("200 OK"))
	must.BeEqual(t, 0, StatusCode(""))
	must.BeEqual(t, 0, StatusCode("OK"))
}

func TestParseStatusLine(t *testing.T) {
	var tests = []struct {
		raw      string
		expected string
	}{
		{raw: New("x").String(), expected: "200 OK"},
		{raw: "HTTP/1.1 404 Not Found\r\nContent-Type: text/html\r\n\r\n", expected: "404 Not Found"},
		{raw: "HTTP/1.1", expected: ""},
		{raw: "", expected: ""},
	}
	for _, test := range tests {
		must.BeEqual(t, test.expected, ParseStatusLine(test.raw), test.raw)
	}
}
