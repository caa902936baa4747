package ui

import (
	"github.com/yext/minihttpd/accesslog"
	"github.com/yext/minihttpd/instance"
	"github.com/yext/minihttpd/probe"
)

// Provider presents command output to the user
type Provider interface {
	Infof(string, ...interface{})
	Errorf(string, ...interface{})

	Routes(paths []string)
	Status([]instance.Status)
	ProbeResults([]probe.Result)

	ShowLog(entries <-chan accesslog.Entry) <-chan struct{}
}
