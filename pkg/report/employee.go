package report

import (
	"time"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

// EmployeeDay is the employee view of one day: a row per employee.
type EmployeeDay struct {
	Day  roster.Weekday `json:"day"`
	Date time.Time      `json:"date"`
	Timeline
}

// EmployeeView is the weekly employee view.
type EmployeeView struct {
	roster.Header
	Days []EmployeeDay `json:"days"`
}

// BuildEmployeeView lays out every employee's entries per day. Primary
// entries become solid bars, additional entries secondary bars. Entries
// without an assignment or with an unusable interval are left out; an
// employee without entries still gets an empty row.
func BuildEmployeeView(w *roster.Week, opts Options) EmployeeView {
	opts = opts.withDefaults(w)
	v := EmployeeView{Header: w.Header}
	for _, d := range opts.Days {
		rows := make([]Row, 0, len(w.Schedules))
		for i := range w.Schedules {
			emp := &w.Schedules[i]
			rows = append(rows, newRow(emp.Name, employeeBars(emp, d, w.Catalog), opts))
		}
		v.Days = append(v.Days, EmployeeDay{Day: d, Date: w.Date(d), Timeline: newTimeline(rows)})
	}
	return v
}

func employeeBars(emp *roster.EmployeeSchedule, d roster.Weekday, c *roster.Catalog) []Bar {
	var bars []Bar
	for _, se := range emp.Entries(d) {
		te := se.Entry
		if !te.Valid() || te.Assignment.IsNone() {
			continue
		}
		bars = append(bars, Bar{
			Start:      te.Start,
			End:        te.End,
			Assignment: te.Assignment,
			Style:      c.Lookup(te.Assignment),
			Secondary:  se.Slot.Block == roster.Additional,
		})
	}
	return bars
}
