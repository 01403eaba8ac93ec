// Package dashboard holds the results dashboard state: which analysis is
// shown, whether it is loading, ready or failed, and which tab is active.
package dashboard

import (
	"context"

	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/domain"
)

// FailedMessage is shown when a fetch fails without a backend explanation
const FailedMessage = "Failed to load results"

// NotFoundMessage is shown when a fetch succeeds but carries no result
const NotFoundMessage = "Analysis not found"

// State is the fetch lifecycle of the dashboard. It is one of Idle,
// Loading, Ready or Failed.
type State interface {
	isState()
}

// Idle means no analysis identifier has been requested yet
type Idle struct{}

// Loading means a fetch for ID is outstanding
type Loading struct {
	ID int
}

// Ready holds a fully loaded result
type Ready struct {
	ID     int
	Result *domain.AnalysisResult
}

// Failed holds the user-facing reason a fetch did not produce a result
type Failed struct {
	ID      int
	Message string
}

func (Idle) isState()    {}
func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}

// Counts derives the severity breakdown of the loaded result.
func (r Ready) Counts() SeverityCounts {
	return CountSeverities(r.Result.Anomalies)
}

// Ticket identifies one issued fetch. Only the most recent ticket for the
// current identifier may change the dashboard.
type Ticket struct {
	ID  int
	seq uint64
}

// Fetcher loads an analysis by identifier
type Fetcher interface {
	GetAnalysis(ctx context.Context, id int) (*domain.AnalysisResult, error)
}

// Dashboard is the single owner of the displayed AnalysisResult.
type Dashboard struct {
	state  State
	tab    Tab
	id     int
	hasID  bool
	seq    uint64
	latest Ticket
}

// New creates an idle dashboard on the summary tab.
func New() *Dashboard {
	return &Dashboard{state: Idle{}, tab: TabSummary}
}

// State returns the current fetch lifecycle state.
func (d *Dashboard) State() State {
	return d.state
}

// ID returns the current analysis identifier, if any.
func (d *Dashboard) ID() (int, bool) {
	return d.id, d.hasID
}

// Request asks to display analysis id. A fetch ticket is issued only when id
// differs from the current identifier; an unchanged id is never re-fetched,
// including after a failure.
func (d *Dashboard) Request(id int) (Ticket, bool) {
	if d.hasID && d.id == id {
		return Ticket{}, false
	}
	d.id = id
	d.hasID = true
	d.tab = TabSummary
	return d.issue(), true
}

// Reload re-fetches the current identifier on explicit user request. The
// result is replaced wholesale once the new fetch resolves.
func (d *Dashboard) Reload() (Ticket, bool) {
	if !d.hasID {
		return Ticket{}, false
	}
	return d.issue(), true
}

func (d *Dashboard) issue() Ticket {
	d.seq++
	d.latest = Ticket{ID: d.id, seq: d.seq}
	d.state = Loading{ID: d.id}
	return d.latest
}

// Pending returns the ticket of the outstanding fetch, if one is in flight.
func (d *Dashboard) Pending() (Ticket, bool) {
	if _, ok := d.state.(Loading); !ok {
		return Ticket{}, false
	}
	return d.latest, true
}

// Resolve applies the outcome of a fetch. Outcomes of superseded tickets are
// discarded and false is returned.
func (d *Dashboard) Resolve(t Ticket, result *domain.AnalysisResult, err error) bool {
	if t != d.latest || !d.hasID || t.ID != d.id {
		return false
	}
	switch {
	case err != nil:
		d.state = Failed{ID: t.ID, Message: ErrorMessage(err)}
	case result == nil:
		d.state = Failed{ID: t.ID, Message: NotFoundMessage}
	default:
		d.state = Ready{ID: t.ID, Result: result}
	}
	return true
}

// Load requests id and, when a fetch is due, performs it synchronously.
func (d *Dashboard) Load(ctx context.Context, f Fetcher, id int) State {
	t, ok := d.Request(id)
	if !ok {
		return d.state
	}
	res, err := f.GetAnalysis(ctx, id)
	d.Resolve(t, res, err)
	return d.state
}

// Tab returns the active view.
func (d *Dashboard) Tab() Tab {
	return d.tab
}

// SetTab switches the active view. It never triggers a fetch.
func (d *Dashboard) SetTab(t Tab) {
	d.tab = t
}

// NextTab cycles forward through the views.
func (d *Dashboard) NextTab() {
	d.tab = d.tab.Next()
}

// PrevTab cycles backward through the views.
func (d *Dashboard) PrevTab() {
	d.tab = d.tab.Prev()
}

// ErrorMessage maps a fetch failure to user-facing text, preferring a
// structured backend message.
func ErrorMessage(err error) string {
	if msg, ok := api.StructuredMessage(err); ok {
		return msg
	}
	return FailedMessage
}
