// Package roster defines the domain model of a weekly duty roster.
//
// A roster week is decoded once from the planning workbook and then shared
// read-only by every query, layout and report. The model makes absence
// explicit instead of relying on sentinel strings:
//
//   - [Clock] is a time of day whose zero value means "no time recorded".
//   - [Weekday] is a closed enumeration of the five working days.
//   - [Assignment] names the duty an entry belongs to; [None] marks an entry
//     without assignment, [Sick] and [Leave] mark absences.
//
// # Entries and slots
//
// Each employee has two blocks per day. The primary block holds the regular
// working times (two slots), the additional block holds secondary duties that
// may overlap them (four slots). [Slots] lists all six slot identifiers in
// their canonical order so that callers iterate instead of branching per slot:
//
//	for _, se := range emp.Entries(roster.Monday) {
//	    if !se.Entry.Valid() {
//	        continue
//	    }
//	    fmt.Println(se.Slot, se.Entry.Start, se.Entry.End)
//	}
//
// An entry is valid when both Start and End are present and Start <= End.
// Invalid entries stay in the model (they are what the sheet contains) but
// every aggregation in package query skips them.
package roster
