package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/yext/minihttpd/ui"
)

var _ ui.Provider = &Provider{}

// Provider writes command output to a terminal
type Provider struct {
	Out io.Writer
	// Render tables as tab separated text rather than boxes
	Plain bool
}

// NewProvider creates a Provider writing to stdout
func NewProvider() *Provider {
	return &Provider{
		Out: os.Stdout,
	}
}

func (p *Provider) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Provider) Infof(format string, args ...interface{}) {
	fmt.Fprintf(p.out(), format, args...)
	fmt.Fprintln(p.out())
}

func (p *Provider) Errorf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(p.out(), format, args...)
	fmt.Fprintln(p.out())
}
