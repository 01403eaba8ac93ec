// Package chart draws the activity timeline. It consumes points that the
// backend already aggregated and performs no analysis of its own.
package chart

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
)

// EmptyMessage is rendered when no point carries a value
const EmptyMessage = "No timeline data available."

var (
	labelKeys = []string{"time", "timestamp", "bucket", "hour", "label"}
	valueKeys = []string{"count", "value", "total", "requests"}
)

// Point is one labelled bucket of the timeline
type Point struct {
	Label string
	Value float64
}

// Points extracts label/value pairs from opaque timeline items. Items
// without a numeric value are skipped; a missing label falls back to the
// item's position.
func Points(raw []json.RawMessage) []Point {
	out := make([]Point, 0, len(raw))
	for i, item := range raw {
		if !gjson.ValidBytes(item) {
			continue
		}
		doc := gjson.ParseBytes(item)
		value, ok := first(doc, valueKeys)
		if !ok || value.Type != gjson.Number {
			continue
		}
		label := fmt.Sprintf("#%d", i+1)
		if l, ok := first(doc, labelKeys); ok && l.String() != "" {
			label = l.String()
		}
		out = append(out, Point{Label: label, Value: value.Float()})
	}
	return out
}

func first(doc gjson.Result, keys []string) (gjson.Result, bool) {
	for _, k := range keys {
		if r := doc.Get(k); r.Exists() {
			return r, true
		}
	}
	return gjson.Result{}, false
}

// Options control chart layout
type Options struct {
	Width    int // total width in cells
	BarStyle lipgloss.Style
}

// Render draws a horizontal bar chart of the timeline points.
func Render(raw []json.RawMessage, opts Options) string {
	points := Points(raw)
	if len(points) == 0 {
		return EmptyMessage
	}

	labelWidth := 0
	maxValue := 0.0
	for _, p := range points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		maxValue = max(maxValue, p.Value)
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	barWidth := max(width-labelWidth-12, 10)

	var b strings.Builder
	for i, p := range points {
		n := 0
		if maxValue > 0 && p.Value > 0 {
			n = max(int(p.Value/maxValue*float64(barWidth)), 1)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s │%s %s",
			labelWidth, p.Label,
			opts.BarStyle.Render(strings.Repeat("█", n)),
			formatValue(p.Value))
	}
	return b.String()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
