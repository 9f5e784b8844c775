package query

import (
	"slices"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Member is an employee working for a group on one day.
type Member struct {
	Name string `json:"name"`

	// Primary are the entries assigned to the group itself.
	Primary []roster.SlotEntry `json:"primary"`

	// Secondary are entries of other, non-absence assignments that overlap
	// one of the primary entries.
	Secondary []roster.SlotEntry `json:"secondary"`
}

// Start returns the earliest start among the primary entries.
func (m Member) Start() roster.Clock {
	var first roster.Clock
	for _, se := range m.Primary {
		if !first.IsSet() || se.Entry.Start.Before(first) {
			first = se.Entry.Start
		}
	}
	return first
}

// GroupMembership returns the employees with at least one entry assigned to
// target on day d, ordered by their earliest such entry. Ties keep sheet
// order. Absence targets and the empty assignment match nobody.
func (e *Engine) GroupMembership(target roster.Assignment, d roster.Weekday) []Member {
	if target.IsNone() || e.IsAbsence(target) {
		return nil
	}

	var members []Member
	for i := range e.schedules {
		entries := validEntries(&e.schedules[i], d, anyEntry)

		var m Member
		for _, se := range entries {
			if se.Entry.Assignment == target {
				m.Primary = append(m.Primary, se)
			}
		}
		if len(m.Primary) == 0 {
			continue
		}

		for _, se := range entries {
			a := se.Entry.Assignment
			if a == target || a.IsNone() || e.IsAbsence(a) {
				continue
			}
			if overlapsAny(se.Entry, m.Primary) {
				m.Secondary = append(m.Secondary, se)
			}
		}

		m.Name = e.schedules[i].Name
		members = append(members, m)
	}

	slices.SortStableFunc(members, func(a, b Member) int {
		return a.Start().Minutes() - b.Start().Minutes()
	})
	return members
}

func overlapsAny(te roster.TimeEntry, others []roster.SlotEntry) bool {
	for _, o := range others {
		if roster.Overlaps(te.Start, te.End, o.Entry.Start, o.Entry.End) {
			return true
		}
	}
	return false
}
