package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type writerConsole struct {
	out io.Writer
}

func NewStdOutConsole() Console {
	return NewWriterConsole(os.Stdout)
}

// NewWriterConsole writes to out instead of stdout. Tests use it to
// capture command output.
func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{out: out}
}

func (o *writerConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.out, builder.String())
}
