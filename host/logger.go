package host

import (
	"fmt"
	"io"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// WriterLogger writes log lines to an io.Writer, typically os.Stderr.
type WriterLogger struct {
	W io.Writer
}

func (l WriterLogger) WriteLineString(s string) {
	if l.W == nil {
		return
	}
	fmt.Fprintln(l.W, s)
}

func logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
