package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type writerConsole struct {
	out      io.Writer
	now      func() time.Time
	prefixes []string
}

// NewStdErrConsole writes status lines to stderr, leaving stdout for rendered output.
func NewStdErrConsole() Console {
	return NewWriterConsole(os.Stderr)
}

func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{
		out: out,
		now: time.Now,
	}
}

func (o *writerConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(o.now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.out, builder.String())
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	if len(o.prefixes) == 0 {
		return
	}
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
