package query

import (
	"time"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

// DayHours is an hour total for one day.
type DayHours struct {
	Day   roster.Weekday `json:"day"`
	Hours float64        `json:"hours"`
}

// HoursByAssignment sums the worked time of primary entries on day d whose
// assignment is one of targets. Breaks are deducted when recorded as a
// valid pair.
func (e *Engine) HoursByAssignment(targets []roster.Assignment, d roster.Weekday) float64 {
	set := make(map[roster.Assignment]bool, len(targets))
	for _, a := range targets {
		set[a] = true
	}
	return e.sumPrimary(d, func(_ *roster.EmployeeSchedule, te roster.TimeEntry) bool {
		return set[te.Assignment]
	})
}

// HoursByQualification sums the worked time of primary entries on day d of
// employees whose directory qualification equals qualification. Absences
// are not worked time and are skipped.
func (e *Engine) HoursByQualification(dir roster.Directory, qualification string, d roster.Weekday) float64 {
	return e.sumPrimary(d, func(emp *roster.EmployeeSchedule, te roster.TimeEntry) bool {
		info, ok := dir[emp.Name]
		return ok && info.Qualification == qualification && !e.IsAbsence(te.Assignment)
	})
}

// WeeklyHoursByAssignment returns HoursByAssignment for each of days.
func (e *Engine) WeeklyHoursByAssignment(targets []roster.Assignment, days []roster.Weekday) []DayHours {
	out := make([]DayHours, len(days))
	for i, d := range days {
		out[i] = DayHours{Day: d, Hours: e.HoursByAssignment(targets, d)}
	}
	return out
}

// WeeklyHoursByQualification returns HoursByQualification for each of days.
func (e *Engine) WeeklyHoursByQualification(dir roster.Directory, qualification string, days []roster.Weekday) []DayHours {
	out := make([]DayHours, len(days))
	for i, d := range days {
		out[i] = DayHours{Day: d, Hours: e.HoursByQualification(dir, qualification, d)}
	}
	return out
}

func (e *Engine) sumPrimary(d roster.Weekday, match func(*roster.EmployeeSchedule, roster.TimeEntry) bool) float64 {
	var total time.Duration
	for i := range e.schedules {
		emp := &e.schedules[i]
		for _, se := range validEntries(emp, d, primaryOnly) {
			if match(emp, se.Entry) {
				total += se.Entry.Duration()
			}
		}
	}
	return roster.Round2(total.Hours())
}
