package terminal

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/yext/minihttpd/accesslog"
)

// ShowLog prints entries as they arrive. The returned channel is closed once
// entries is closed and everything has been printed.
func (p *Provider) ShowLog(entries <-chan accesslog.Entry) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for entry := range entries {
			p.printEntry(entry)
		}
	}()
	return done
}

func (p *Provider) printEntry(entry accesslog.Entry) {
	w := p.out()
	fmt.Fprintf(w, "%v %v ", entry.Time.Format("2006-01-02 15:04:05"), entry.Remote)

	statusColor := color.New(color.FgGreen)
	switch code := entry.Code(); {
	case code == 0:
		statusColor = color.New(color.FgMagenta)
	case code >= 500:
		statusColor = color.New(color.FgRed)
	case code >= 400:
		statusColor = color.New(color.FgYellow)
	}
	status := entry.Status
	if status == "" {
		status = "-"
	}
	statusColor.Fprintf(w, "[%v]", status)

	fmt.Fprintf(w, " %q %dB %v", entry.RequestLine, entry.Bytes, entry.Duration.Round(time.Microsecond))
	if entry.Error != "" {
		color.New(color.FgRed).Fprintf(w, " (%v)", entry.Error)
	}
	fmt.Fprintln(w)
}
