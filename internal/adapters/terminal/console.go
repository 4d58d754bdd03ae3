package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Adapter describes the terminal smokecheck writes its report to.
type Adapter struct {
	out io.Writer
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(out io.Writer) *Adapter {
	return &Adapter{
		out: out,
	}
}

// IsInteractive returns true if the output is a terminal.
func (a *Adapter) IsInteractive() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if file, ok := a.out.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
