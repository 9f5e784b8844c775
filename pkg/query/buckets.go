package query

import (
	"slices"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start roster.Clock `json:"start" toml:"start" yaml:"start"`
	End   roster.Clock `json:"end" toml:"end" yaml:"end"`
}

// ShiftBucket is a named set of windows used to report coverage
// independent of assignments.
type ShiftBucket struct {
	Name    string   `json:"name" toml:"name" yaml:"name"`
	Windows []Window `json:"windows" toml:"windows" yaml:"windows"`
}

// BucketCount is the occupancy of one bucket on one day.
type BucketCount struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// DefaultShiftBuckets is the coverage table of the facility's roster
// template.
var DefaultShiftBuckets = []ShiftBucket{
	{Name: "Frühdienst", Windows: []Window{
		{roster.At(6, 45), roster.At(7, 0)},
		{roster.At(7, 0), roster.At(7, 30)},
	}},
	{Name: "Vormittag", Windows: []Window{{roster.At(8, 0), roster.At(12, 0)}}},
	{Name: "Mittag", Windows: []Window{{roster.At(12, 0), roster.At(14, 0)}}},
	{Name: "Nachmittag", Windows: []Window{{roster.At(14, 0), roster.At(16, 0)}}},
	{Name: "Spätdienst", Windows: []Window{
		{roster.At(16, 0), roster.At(16, 30)},
		{roster.At(16, 30), roster.At(17, 0)},
	}},
}

// ShiftBucketing counts, per bucket, the primary entries on day d that
// overlap one of the bucket's windows. An entry counts at most once per
// bucket but may count in several buckets. Absences are ignored. Names are
// deduplicated per bucket in discovery order.
func (e *Engine) ShiftBucketing(buckets []ShiftBucket, d roster.Weekday) []BucketCount {
	out := make([]BucketCount, len(buckets))
	for i, b := range buckets {
		out[i] = BucketCount{Name: b.Name, Names: []string{}}
	}

	for i := range e.schedules {
		emp := &e.schedules[i]
		entries := validEntries(emp, d, func(se roster.SlotEntry) bool {
			return primaryOnly(se) && !e.IsAbsence(se.Entry.Assignment)
		})
		for _, se := range entries {
			for bi, b := range buckets {
				if !inBucket(se.Entry, b) {
					continue
				}
				out[bi].Count++
				if !slices.Contains(out[bi].Names, emp.Name) {
					out[bi].Names = append(out[bi].Names, emp.Name)
				}
			}
		}
	}
	return out
}

func inBucket(te roster.TimeEntry, b ShiftBucket) bool {
	for _, w := range b.Windows {
		if te.Overlaps(w.Start, w.End) {
			return true
		}
	}
	return false
}
