package cli

import (
	"fmt"

	"github.com/vburojevic/loglens/internal/logtable"
)

// LogsCmd prints one page of the searchable log table
type LogsCmd struct {
	ID     int    `arg:"" help:"Analysis id"`
	Search string `short:"s" help:"Case-sensitive text matched against source IP, URL and status code"`
	Page   int    `short:"p" default:"1" help:"Page to show (50 entries per page)"`
	All    bool   `help:"Print every page"`
}

// Run executes the logs command
func (c *LogsCmd) Run(globals *Globals) error {
	if c.Page < 1 {
		return outputErrorCommon(globals, CodeInvalidFlags, fmt.Sprintf("--page must be at least 1, got %d", c.Page))
	}

	ctx, stop := commandContext()
	defer stop()

	res, err := loadAnalysis(ctx, globals, c.ID)
	if err != nil {
		return err
	}

	table := logtable.New(res.LogEntries)
	table.SetSearch(c.Search)
	emitter := globals.Emitter()

	if c.All {
		for n := 1; n <= max(table.Page().TotalPages, 1); n++ {
			table.SetPage(n)
			if err := emitter.Logs(c.ID, c.Search, table.Page()); err != nil {
				return err
			}
		}
		return nil
	}

	table.SetPage(c.Page)
	page := table.Page()
	if !page.Empty() && page.Number != c.Page {
		emitWarning(globals, emitter, fmt.Sprintf("page %d is out of range, showing page %d of %d", c.Page, page.Number, page.TotalPages))
	}
	return emitter.Logs(c.ID, c.Search, page)
}
