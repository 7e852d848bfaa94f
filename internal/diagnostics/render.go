package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\033[1;31m"
	ansiReset = "\033[0m"
)

// ColorEnabled reports whether f is an interactive terminal that should
// receive ANSI colors.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fprint writes err as a single diagnostic line. Non-diagnostic errors are
// printed as plain "error: ..." lines.
func Fprint(w io.Writer, err error, color bool) {
	de, ok := err.(*DiagnosticError)
	if !ok {
		if color {
			fmt.Fprintf(w, "%serror%s: %s\n", ansiRed, ansiReset, err)
		} else {
			fmt.Fprintf(w, "error: %s\n", err)
		}
		return
	}

	if !color {
		fmt.Fprintln(w, de.Error())
		return
	}
	fmt.Fprintf(w, "%s%serror[%s]%s: %s: %s\n",
		de.location(), ansiRed, de.Code, ansiReset, de.Code.Name(), de.Message)
}
