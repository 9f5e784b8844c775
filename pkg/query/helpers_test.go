package query

import "github.com/dienstplan/dienstplan/pkg/roster"

var (
	p1 = roster.Slot{Block: roster.Primary, Index: 0}
	p2 = roster.Slot{Block: roster.Primary, Index: 1}
	a1 = roster.Slot{Block: roster.Additional, Index: 0}
	a2 = roster.Slot{Block: roster.Additional, Index: 1}
)

// newEmployee returns an empty week for name with all slots present.
func newEmployee(name string) roster.EmployeeSchedule {
	e := roster.EmployeeSchedule{Name: name}
	for _, d := range roster.Weekdays {
		e.Primary = append(e.Primary, roster.DaySchedule{Day: d, Entries: make([]roster.TimeEntry, 2)})
		e.Additional = append(e.Additional, roster.DaySchedule{Day: d, Entries: make([]roster.TimeEntry, 4)})
	}
	return e
}

// shift stores an entry and returns the schedule for chaining. An empty
// start or end leaves that bound absent.
func shift(e roster.EmployeeSchedule, d roster.Weekday, s roster.Slot, start, end string, a roster.Assignment) roster.EmployeeSchedule {
	e.Block(s.Block)[d.Index()].Entries[s.Index] = roster.TimeEntry{
		Start:      roster.MustClock(start),
		End:        roster.MustClock(end),
		Assignment: a,
	}
	return e
}

// withBreak adds a break to an existing entry.
func withBreak(e roster.EmployeeSchedule, d roster.Weekday, s roster.Slot, start, end string) roster.EmployeeSchedule {
	te := &e.Block(s.Block)[d.Index()].Entries[s.Index]
	te.BreakStart = roster.MustClock(start)
	te.BreakEnd = roster.MustClock(end)
	return e
}

func memberNames(ms []Member) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}
