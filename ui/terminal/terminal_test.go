package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/theothertomelliott/must"
	"github.com/yext/minihttpd/accesslog"
	"github.com/yext/minihttpd/instance"
	"github.com/yext/minihttpd/probe"
)

func init() {
	color.NoColor = true
}

func TestRoutesPlain(t *testing.T) {
	var buf bytes.Buffer
	p := &Provider{Out: &buf, Plain: true}
	p.Routes([]string{"/", "/about"})
	must.BeEqual(t, "PATH\n/\n/about\n", buf.String())
}

func TestRoutesTable(t *testing.T) {
	var buf bytes.Buffer
	p := &Provider{Out: &buf}
	p.Routes([]string{"/", "/favicon.ico"})
	for _, expected := range []string{"PATH", "/favicon.ico"} {
		if !strings.Contains(buf.String(), expected) {
			t.Errorf("expected %q in output:\n%s", expected, buf.String())
		}
	}
}

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	p := &Provider{Out: &buf, Plain: true}
	p.Status([]instance.Status{
		{
			Instance: instance.Instance{
				Pid:       42,
				Addr:      "127.0.0.1:8080",
				StartTime: time.Now().Add(-time.Hour),
			},
			Running: true,
			Ports:   []string{"8080"},
		},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	must.BeEqual(t, 2, len(lines))
	must.BeEqual(t, "PID\tADDRESS\tSTATUS\tPORTS\tRSS\tVMS\tSTART TIME\tUPTIME", lines[0])
	if !strings.HasPrefix(lines[1], "42\t127.0.0.1:8080\tRUNNING\t8080\t0 B\t0 B\t") {
		t.Errorf("unexpected row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "1 hour ago") {
		t.Errorf("expected uptime in row: %q", lines[1])
	}
}

func TestProbeResults(t *testing.T) {
	var buf bytes.Buffer
	p := &Provider{Out: &buf, Plain: true}
	p.ProbeResults([]probe.Result{
		{Path: "/", Status: "200 OK", Body: "abc", Elapsed: time.Millisecond},
		{Path: "/down", Err: errors.New("refused")},
	})
	must.BeEqual(t, "PATH\tSTATUS\tBYTES\tTIME\n/\t200 OK\t3\t1ms\n/down\terror: refused\t0\t0s\n", buf.String())
}

func TestShowLog(t *testing.T) {
	var buf bytes.Buffer
	p := &Provider{Out: &buf}

	entries := make(chan accesslog.Entry, 2)
	entries <- accesslog.Entry{
		Time:        time.Date(2020, 1, 2, 3, 4, 5, 0, time.Local),
		Remote:      "127.0.0.1:5555",
		RequestLine: "GET / HTTP/1.1",
		Status:      "200 OK",
		Bytes:       10,
	}
	entries <- accesslog.Entry{
		Time:   time.Date(2020, 1, 2, 3, 4, 6, 0, time.Local),
		Remote: "127.0.0.1:5556",
		Error:  "EOF",
	}
	close(entries)

	select {
	case <-p.ShowLog(entries):
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for log output")
	}

	must.BeEqual(t,
		"2020-01-02 03:04:05 127.0.0.1:5555 [200 OK] \"GET / HTTP/1.1\" 10B 0s\n"+
			"2020-01-02 03:04:06 127.0.0.1:5556 [-] \"\" 0B 0s (EOF)\n",
		buf.String(),
	)
}
