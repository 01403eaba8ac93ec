package cli

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vburojevic/loglens/internal/output"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// interactive reports whether both stdin and stdout are terminals.
var interactive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// requireInteractive rejects TUI commands when there is no terminal to draw on.
func requireInteractive(globals *Globals, command, alternative string) error {
	if interactive() {
		return nil
	}
	return outputErrorCommon(globals, CodeNotInteractive,
		"loglens "+command+" requires an interactive terminal.", alternative)
}

// PrepareOutput disables styling when text output is not going to a terminal.
func PrepareOutput(globals *Globals) {
	if f, ok := globals.Stdout.(*os.File); ok && isTerminal(f) {
		return
	}
	output.DisableStyles()
}
