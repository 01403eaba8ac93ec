package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/dashboard"
	"github.com/vburojevic/loglens/internal/output"
)

// SummaryCmd prints the overview of one or more analyses
type SummaryCmd struct {
	IDs         []int `arg:"" name:"id" help:"Analysis ids"`
	Concurrency int   `short:"c" default:"4" help:"Maximum concurrent fetches"`
}

type summarySlot struct {
	overview dashboard.Overview
	err      error
}

// Run executes the summary command
func (c *SummaryCmd) Run(globals *Globals) error {
	if c.Concurrency < 1 {
		return outputErrorCommon(globals, CodeInvalidFlags, fmt.Sprintf("--concurrency must be at least 1, got %d", c.Concurrency))
	}

	ctx, stop := commandContext()
	defer stop()

	slots := c.fetchAll(ctx, globals)

	emitter := globals.Emitter()
	overviews := make([]dashboard.Overview, 0, len(slots))
	var failed int
	for i, s := range slots {
		if s.err != nil {
			failed++
			outputAPIError(globals, fmt.Sprintf("analysis %d: %s", c.IDs[i], dashboard.ErrorMessage(s.err)), s.err)
			continue
		}
		overviews = append(overviews, s.overview)
		if err := emitter.Analysis(s.overview); err != nil {
			return err
		}
	}

	if len(c.IDs) > 1 {
		if err := emitter.Summary(output.NewSummaryOutput(overviews, failed)); err != nil {
			return err
		}
	}
	if failed > 0 {
		return &CLIError{Code: CodeAPI, Message: fmt.Sprintf("%d of %d analyses could not be loaded", failed, len(c.IDs))}
	}
	return nil
}

// fetchAll loads every id with bounded concurrency. Each goroutine owns its
// slot, so results keep the order of the ids.
func (c *SummaryCmd) fetchAll(ctx context.Context, globals *Globals) []summarySlot {
	client := globals.Client()
	slots := make([]summarySlot, len(c.IDs))

	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for i, id := range c.IDs {
		g.Go(func() error {
			res, err := client.GetAnalysis(ctx, id)
			switch {
			case err != nil:
				slots[i].err = err
			case res == nil:
				slots[i].err = &api.Error{Op: "analysis", Message: dashboard.NotFoundMessage, Structured: true}
			default:
				slots[i].overview = dashboard.Summarize(res)
			}
			return nil
		})
	}
	_ = g.Wait()
	return slots
}
