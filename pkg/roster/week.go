package roster

import "time"

// Header carries the planning period printed on top of the roster sheet.
type Header struct {
	Year         int       `json:"year"`
	CalendarWeek int       `json:"calendar_week"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// Week bundles everything read from one roster workbook.
type Week struct {
	Header
	Schedules []EmployeeSchedule `json:"schedules"`
	Events    []SpecialEvent     `json:"events"`
	Catalog   *Catalog           `json:"catalog"`
	Staff     Directory          `json:"staff"`
}

// Date returns the calendar date of day d, or the zero time when the
// start date is unknown.
func (w *Week) Date(d Weekday) time.Time {
	if w.StartDate.IsZero() {
		return time.Time{}
	}
	return w.StartDate.AddDate(0, 0, d.Index())
}

// DayOf maps a calendar date into the planned week.
func (w *Week) DayOf(date time.Time) (Weekday, bool) {
	if w.StartDate.IsZero() {
		return 0, false
	}
	y1, m1, d1 := w.StartDate.Date()
	y2, m2, d2 := date.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	day := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	idx := int(day.Sub(start).Hours() / 24)
	wd := Weekday(idx)
	if idx < 0 || !wd.Valid() {
		return 0, false
	}
	return wd, true
}

// EventsOn returns the special events dated on day d, in sheet order.
func (w *Week) EventsOn(d Weekday) []SpecialEvent {
	var out []SpecialEvent
	for _, ev := range w.Events {
		if day, ok := w.DayOf(ev.Date); ok && day == d {
			out = append(out, ev)
		}
	}
	return out
}

// Employee looks up a schedule by name.
func (w *Week) Employee(name string) (*EmployeeSchedule, bool) {
	for i := range w.Schedules {
		if w.Schedules[i].Name == name {
			return &w.Schedules[i], true
		}
	}
	return nil, false
}

// Groups returns the care groups: the first n catalog entries.
func (w *Week) Groups(n int) []Assignment {
	return w.Catalog.Groups(n)
}
