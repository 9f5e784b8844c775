package roster

import "math"

// EmployeeSchedule is the parsed week of one staff member.
type EmployeeSchedule struct {
	Name       string        `json:"name"`
	Primary    []DaySchedule `json:"primary"`
	Additional []DaySchedule `json:"additional"`

	// WeeklyHours is the planned working time of the week, rounded to
	// two decimals.
	WeeklyHours float64 `json:"weekly_hours"`
	// WeeklyBalance is the signed deviation from the contracted hours,
	// rounded to two decimals.
	WeeklyBalance float64 `json:"weekly_balance"`
}

// Block returns the day schedules of block b.
func (e *EmployeeSchedule) Block(b Block) []DaySchedule {
	if b == Additional {
		return e.Additional
	}
	return e.Primary
}

// Day returns the schedule of block b on day d.
func (e *EmployeeSchedule) Day(b Block, d Weekday) (DaySchedule, bool) {
	for _, ds := range e.Block(b) {
		if ds.Day == d {
			return ds, true
		}
	}
	return DaySchedule{}, false
}

// Entries returns the entries of day d across both blocks in [Slots] order.
// Days missing from the schedule contribute nothing.
func (e *EmployeeSchedule) Entries(d Weekday) []SlotEntry {
	var out []SlotEntry
	for _, s := range Slots {
		if te, ok := e.Entry(d, s); ok {
			out = append(out, SlotEntry{Slot: s, Entry: te})
		}
	}
	return out
}

// BlockEntries returns the entries of block b on day d in slot order.
func (e *EmployeeSchedule) BlockEntries(b Block, d Weekday) []SlotEntry {
	var out []SlotEntry
	for _, se := range e.Entries(d) {
		if se.Slot.Block == b {
			out = append(out, se)
		}
	}
	return out
}

// Entry returns the entry stored in slot s on day d.
func (e *EmployeeSchedule) Entry(d Weekday, s Slot) (TimeEntry, bool) {
	ds, ok := e.Day(s.Block, d)
	if !ok || s.Index < 0 || s.Index >= len(ds.Entries) {
		return TimeEntry{}, false
	}
	return ds.Entries[s.Index], true
}

// Round2 rounds v to two decimal places, as the roster sheet does for hour
// totals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
