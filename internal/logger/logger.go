package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	cInf  = color.New(color.FgCyan, color.Bold).SprintFunc()
	cWarn = color.New(color.FgYellow, color.Bold).SprintFunc()
	cErr  = color.New(color.FgRed, color.Bold).SprintFunc()
)

var out io.Writer = os.Stderr

// SetOutput redirects all log lines; tests use it to capture output.
func SetOutput(w io.Writer) {
	out = w
}

func Info(format string, v ...any) {
	fmt.Fprintf(out, "%s %s\n", cInf("[INFO]"), fmt.Sprintf(format, v...))
}

func Warn(format string, v ...any) {
	fmt.Fprintf(out, "%s %s\n", cWarn("[WARN]"), fmt.Sprintf(format, v...))
}

func Error(format string, v ...any) {
	fmt.Fprintf(out, "%s %s\n", cErr("[ERR]"), fmt.Sprintf(format, v...))
}
