package common

import (
	"fmt"
	"testing"

	"github.com/theothertomelliott/must"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, v ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func TestMaskLogger(t *testing.T) {
	must.BeEqual(t, NullLogger{}, MaskLogger(nil))

	l := &recordingLogger{}
	must.BeEqual(t, l, MaskLogger(l))
}

func TestPrefixLogger(t *testing.T) {
	l := &recordingLogger{}
	PrefixLogger("serve: ", l).Printf("accepted %d", 1)
	must.BeEqual(t, []string{"serve: accepted 1"}, l.lines)

	// A nil logger is masked rather than dereferenced
	PrefixLogger("serve: ", nil).Printf("dropped")
}
