package cli

import (
	"github.com/benbjohnson/clock"

	"github.com/vburojevic/loglens/internal/tui"
)

// UICmd runs the interactive upload screen, then the dashboard of the upload
type UICmd struct {
	File string `arg:"" optional:"" type:"path" help:"Log file to pre-fill in the upload screen"`
	ID   int    `help:"Open this analysis in the dashboard straight away"`
}

// Run executes the UI command
func (c *UICmd) Run(globals *Globals) error {
	if err := requireInteractive(globals, "ui",
		"Use `loglens upload <file>` for scripting."); err != nil {
		return err
	}

	ctx, stop := commandContext()
	defer stop()

	client := globals.Client()
	model := tui.New(ctx, tui.Options{
		Uploader:    client,
		Fetcher:     client,
		Clock:       clock.New(),
		InitialPath: c.File,
		AnalysisID:  c.ID,
	})
	return runProgram(ctx, model)
}
