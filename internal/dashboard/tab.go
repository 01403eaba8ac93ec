package dashboard

import "fmt"

// Tab is one of the four mutually exclusive dashboard views
type Tab int

const (
	TabSummary Tab = iota
	TabAnomalies
	TabTimeline
	TabLogs
)

// Tabs lists the views in display order.
var Tabs = []Tab{TabSummary, TabAnomalies, TabTimeline, TabLogs}

func (t Tab) String() string {
	switch t {
	case TabAnomalies:
		return "anomalies"
	case TabTimeline:
		return "timeline"
	case TabLogs:
		return "logs"
	default:
		return "summary"
	}
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabAnomalies:
		return "Anomalies"
	case TabTimeline:
		return "Timeline"
	case TabLogs:
		return "All Logs"
	default:
		return "Summary"
	}
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}

// ParseTab converts a tab name to a Tab.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if t.String() == s {
			return t, nil
		}
	}
	return TabSummary, fmt.Errorf("unknown tab %q", s)
}
