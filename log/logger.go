package log

import (
	"fmt"
	"io"
	"strings"
)

// Logger filters and prints messages to a destination
type Logger struct {
	output io.Writer
	info   bool
	warn   bool
	err    bool
	debug  bool
}

// New returns an instance of Logger writing to output with every level
// disabled
func New(output io.Writer) *Logger {
	return &Logger{output: output}
}

// SetInfo activates/deactivates info level
func (l *Logger) SetInfo(value bool) {
	l.info = value
}

// SetWarn activates/deactivates warn level
func (l *Logger) SetWarn(value bool) {
	l.warn = value
}

// SetError activates/deactivates error level
func (l *Logger) SetError(value bool) {
	l.err = value
}

// SetDebug activates/deactivates debug level
func (l *Logger) SetDebug(value bool) {
	l.debug = value
}

// Log writes an unconditional formatted message to the output
func (l *Logger) Log(format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(l.output, format, a...)
}

// logColored prints the formatted message wrapped in a color directive
func (l *Logger) logColored(color string, format string, a ...interface{}) {
	l.Log(color+format+ansiReset, a...)
}

// Info writes the formatted message if info level is activated
func (l *Logger) Info(format string, a ...interface{}) {
	if l.info {
		l.logColored(ansiBlue, format, a...)
	}
}

// Warn writes the formatted message if warn level is activated
func (l *Logger) Warn(format string, a ...interface{}) {
	if l.warn {
		l.logColored(ansiYellow, format, a...)
	}
}

// Error writes the error if error level is activated
func (l *Logger) Error(err error) {
	if l.err {
		l.logColored(ansiRed, "%s", err.Error())
	}
}

// Errorf writes the formatted message if error level is activated
func (l *Logger) Errorf(format string, a ...interface{}) {
	if l.err {
		l.logColored(ansiRed, format, a...)
	}
}

// Debug writes the formatted message if debug level is activated
func (l *Logger) Debug(format string, a ...interface{}) {
	if l.debug {
		l.logColored(ansiCyan, format, a...)
	}
}
