package query

import (
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// AffectedEmployees returns the names of employees with a valid entry on
// day d that overlaps [start, end) and is assigned to target. When target
// is the cross-cutting sentinel any overlapping entry qualifies. Absent
// bounds default to 00:00 and 23:00. Each employee appears once, in sheet
// order.
func (e *Engine) AffectedEmployees(d roster.Weekday, target roster.Assignment, start, end roster.Clock) []string {
	start = start.Or(roster.AllDayStart)
	end = end.Or(roster.AllDayEnd)

	var names []string
	for i := range e.schedules {
		emp := &e.schedules[i]
		for _, se := range validEntries(emp, d, anyEntry) {
			if !se.Entry.Overlaps(start, end) {
				continue
			}
			if target == e.crossCutting || se.Entry.Assignment == target {
				names = append(names, emp.Name)
				break
			}
		}
	}
	return names
}

// EventImpact pairs a special event with the employees it affects.
type EventImpact struct {
	Event    roster.SpecialEvent `json:"event"`
	Day      roster.Weekday      `json:"day"`
	Affected []string            `json:"affected"`
}

// AffectedByEvents evaluates every event of week w that falls on day d.
func (e *Engine) AffectedByEvents(w *roster.Week, d roster.Weekday) []EventImpact {
	var out []EventImpact
	for _, ev := range w.EventsOn(d) {
		out = append(out, EventImpact{
			Event:    ev,
			Day:      d,
			Affected: e.AffectedByEvent(w, ev),
		})
	}
	return out
}

// AffectedByEvent returns the employees affected by ev, or nil when ev is
// not dated within week w.
func (e *Engine) AffectedByEvent(w *roster.Week, ev roster.SpecialEvent) []string {
	d, ok := w.DayOf(ev.Date)
	if !ok {
		return nil
	}
	return e.AffectedEmployees(d, ev.Target, ev.Start, ev.End)
}
