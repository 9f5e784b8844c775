package report

import (
	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Default x-range of a timeline without any entries.
const (
	DefaultFirstHour = 6
	DefaultLastHour  = 21
)

// Options configures view assembly.
type Options struct {
	// Days lists the days to build. Defaults to [roster.Weekdays].
	Days []roster.Weekday

	// Groups lists the care groups. Defaults to the first
	// [roster.DefaultGroupCount] catalog assignments.
	Groups []roster.Assignment

	// Buckets is the shift table of the leadership view. Defaults to
	// [query.DefaultShiftBuckets].
	Buckets []query.ShiftBucket

	// Query configures the absence and cross-cutting sentinels.
	Query query.Options

	// MinDistance is the label conflict distance in hours. Defaults to
	// [labels.DefaultMinDistance].
	MinDistance float64

	// Spacing derives row heights from label levels. Defaults to
	// [labels.DefaultSpacing].
	Spacing labels.Spacing
}

func (o Options) withDefaults(w *roster.Week) Options {
	if len(o.Days) == 0 {
		o.Days = roster.Weekdays
	}
	if len(o.Groups) == 0 {
		o.Groups = w.Groups(roster.DefaultGroupCount)
	}
	if o.Buckets == nil {
		o.Buckets = query.DefaultShiftBuckets
	}
	if o.MinDistance == 0 {
		o.MinDistance = labels.DefaultMinDistance
	}
	if o.Spacing == (labels.Spacing{}) {
		o.Spacing = labels.DefaultSpacing
	}
	return o
}
