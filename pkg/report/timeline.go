package report

import (
	"math"

	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Bar is one entry drawn on a timeline row.
type Bar struct {
	Start      roster.Clock      `json:"start"`
	End        roster.Clock      `json:"end"`
	Assignment roster.Assignment `json:"assignment"`
	Style      roster.Style      `json:"style"`

	// Secondary bars are drawn translucent with a dashed outline and
	// carry the assignment abbreviation.
	Secondary bool `json:"secondary"`
}

// Row is one line of a timeline: a name, its bars and the placed time
// labels.
type Row struct {
	Name   string         `json:"name"`
	Bars   []Bar          `json:"bars"`
	Labels []labels.Label `json:"labels"`

	// Height is the vertical room the row needs for its labels.
	Height float64 `json:"height"`
}

// LegendItem explains one color of a timeline.
type LegendItem struct {
	Assignment roster.Assignment `json:"assignment"`
	Style      roster.Style      `json:"style"`
	Secondary  bool              `json:"secondary"`
}

// Timeline is a set of rows sharing one time axis.
type Timeline struct {
	Rows []Row `json:"rows"`

	// FirstHour and LastHour bound the x-axis.
	FirstHour int `json:"first_hour"`
	LastHour  int `json:"last_hour"`

	// Legend lists primary assignments first, then secondary ones, each in
	// order of first appearance.
	Legend []LegendItem `json:"legend"`
}

// newRow builds a row from bars and lays out its start and end labels.
func newRow(name string, bars []Bar, opts Options) Row {
	entries := make([]roster.SlotEntry, len(bars))
	for i, b := range bars {
		entries[i] = roster.SlotEntry{Entry: roster.TimeEntry{Start: b.Start, End: b.End, Assignment: b.Assignment}}
	}
	ls := labels.Assign(labels.ForEntries(name, entries), opts.MinDistance)
	return Row{Name: name, Bars: bars, Labels: ls, Height: opts.Spacing.Row(ls)}
}

// newTimeline computes the axis range and legend of rows.
func newTimeline(rows []Row) Timeline {
	t := Timeline{Rows: rows, FirstHour: DefaultFirstHour, LastHour: DefaultLastHour}

	lo, hi := math.Inf(1), math.Inf(-1)
	seen := make(map[LegendItem]bool)
	var primary, secondary []LegendItem
	for _, r := range rows {
		for _, b := range r.Bars {
			lo = math.Min(lo, b.Start.Hours())
			hi = math.Max(hi, b.End.Hours())

			item := LegendItem{Assignment: b.Assignment, Style: b.Style, Secondary: b.Secondary}
			if seen[item] {
				continue
			}
			seen[item] = true
			if b.Secondary {
				secondary = append(secondary, item)
			} else {
				primary = append(primary, item)
			}
		}
	}
	if !math.IsInf(lo, 1) {
		t.FirstHour = int(lo) - 1
		t.LastHour = int(hi) + 1
	}
	t.Legend = append(primary, secondary...)
	return t
}

// Height returns the summed height of all rows.
func (t Timeline) Height() float64 {
	var h float64
	for _, r := range t.Rows {
		h += r.Height
	}
	return h
}
