package common

// Logger provides a simple logging interface with minimal print function(s)
type Logger interface {
	Printf(format string, v ...interface{})
}

// NullLogger implements the Logger interface with no-op functions
type NullLogger struct{}

var _ Logger = NullLogger{}

// Printf is a no-op print function
func (n NullLogger) Printf(_ string, _ ...interface{}) {}

// MaskLogger takes a Logger and returns the Logger if not nil, or a NullLogger
// if it is nil.
func MaskLogger(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return NullLogger{}
}

// PrefixLogger returns a Logger that prepends prefix to every message
// written to logger.
func PrefixLogger(prefix string, logger Logger) Logger {
	return prefixLogger{
		prefix: prefix,
		logger: MaskLogger(logger),
	}
}

type prefixLogger struct {
	prefix string
	logger Logger
}

func (p prefixLogger) Printf(format string, v ...interface{}) {
	p.logger.Printf(p.prefix+format, v...)
}
