package labels

import (
	"cmp"
	"slices"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

// DefaultMinDistance is the x-distance, in hours, below which two labels
// conflict.
const DefaultMinDistance = 0.3

// Label is a text anchored at a time on a row's axis.
type Label struct {
	X     float64 `json:"x"`
	Text  string  `json:"text"`
	Row   string  `json:"row"`
	Level int     `json:"level"`
}

// Assign returns ls deduplicated by (X, Text), sorted by X, and annotated
// with levels. A label whose distance to an earlier label is below
// minDistance never shares that label's level. ls is not modified.
//
// Labels with equal X are ordered by Text, so the lower Text takes the lower
// level and the result does not depend on the order of ls.
func Assign(ls []Label, minDistance float64) []Label {
	out := dedupe(ls)
	slices.SortStableFunc(out, func(a, b Label) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Text, b.Text)
	})

	for i := range out {
		used := make(map[int]bool)
		for j := range i {
			if abs(out[i].X-out[j].X) < minDistance {
				used[out[j].Level] = true
			}
		}
		level := 0
		for used[level] {
			level++
		}
		out[i].Level = level
	}
	return out
}

func dedupe(ls []Label) []Label {
	type key struct {
		x    float64
		text string
	}
	seen := make(map[key]bool, len(ls))
	out := make([]Label, 0, len(ls))
	for _, l := range ls {
		k := key{l.X, l.Text}
		if seen[k] {
			continue
		}
		seen[k] = true
		l.Level = 0
		out = append(out, l)
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// MaxLevel returns the highest level in ls, or -1 for no labels.
func MaxLevel(ls []Label) int {
	m := -1
	for _, l := range ls {
		m = max(m, l.Level)
	}
	return m
}

// ForEntries builds the start and end labels of the entries of one row that
// are drawn: entries with a valid interval and an assignment. Labels are not
// yet placed; pass them to [Assign].
func ForEntries(row string, entries []roster.SlotEntry) []Label {
	var out []Label
	for _, se := range entries {
		te := se.Entry
		if !te.Valid() || te.Assignment.IsNone() {
			continue
		}
		out = append(out,
			Label{X: te.Start.Hours(), Text: te.Start.String(), Row: row},
			Label{X: te.End.Hours(), Text: te.End.String(), Row: row},
		)
	}
	return out
}

// Spacing derives the vertical room a row needs for its labels.
type Spacing struct {
	Base        float64 `json:"base" toml:"base" yaml:"base"`
	LevelFactor float64 `json:"level_factor" toml:"level_factor" yaml:"level_factor"`
	Min         float64 `json:"min" toml:"min" yaml:"min"`
}

// DefaultSpacing matches the row pitch of the printed timelines.
var DefaultSpacing = Spacing{Base: 2, LevelFactor: 0.3, Min: 2}

// Row returns Base + LevelFactor*maxLevel for placed labels ls, or Min
// when the row has none.
func (s Spacing) Row(ls []Label) float64 {
	if len(ls) == 0 {
		return s.Min
	}
	return s.Base + s.LevelFactor*float64(MaxLevel(ls))
}

// Offsets converts levels into vertical positions below a row baseline.
type Offsets struct {
	Base  float64 `json:"base" toml:"base" yaml:"base"`
	Level float64 `json:"level" toml:"level" yaml:"level"`
}

// DefaultOffsets places level 0 just under the bar and stacks further
// levels downwards.
var DefaultOffsets = Offsets{Base: 0.55, Level: 0.3}

// Y returns yBase - Base - level*Level.
func (o Offsets) Y(yBase float64, level int) float64 {
	return yBase - o.Base - float64(level)*o.Level
}
