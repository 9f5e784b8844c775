package roster

import (
	"fmt"
	"strings"
	"time"
)

// Assignment names the duty category of an entry (a group, a function or
// an absence reason).
type Assignment string

// Assignment sentinels.
const (
	// None marks an entry without assignment.
	None Assignment = ""
	// Sick marks an absence due to illness.
	Sick Assignment = "Krank"
	// Leave marks an absence due to vacation.
	Leave Assignment = "Urlaub"
	// CrossCutting is the special-event target matching every assignment.
	CrossCutting Assignment = "Übergreifend"
)

// ParseAssignment normalizes a cell value; the placeholder "-" becomes None.
func ParseAssignment(s string) Assignment {
	s = strings.TrimSpace(s)
	if s == "-" {
		return None
	}
	return Assignment(s)
}

// IsNone reports whether no assignment is set.
func (a Assignment) IsNone() bool { return a == None }

// TimeEntry is one shift cell group of the roster: a working interval with
// an optional break and the duty it belongs to.
type TimeEntry struct {
	Start      Clock      `json:"start"`
	End        Clock      `json:"end"`
	BreakStart Clock      `json:"break_start"`
	BreakEnd   Clock      `json:"break_end"`
	Assignment Assignment `json:"assignment"`
}

// Valid reports whether the entry describes a usable interval: both bounds
// present and Start not after End.
func (e TimeEntry) Valid() bool {
	return e.Start.IsSet() && e.End.IsSet() && !e.End.Before(e.Start)
}

// HasBreak reports whether both break bounds are present and ordered.
// A break with only one side recorded is ignored.
func (e TimeEntry) HasBreak() bool {
	return e.BreakStart.IsSet() && e.BreakEnd.IsSet() && !e.BreakEnd.Before(e.BreakStart)
}

// Duration returns the worked time of a valid entry minus its break.
// Invalid entries yield zero.
func (e TimeEntry) Duration() time.Duration {
	if !e.Valid() {
		return 0
	}
	d := e.End.Sub(e.Start)
	if e.HasBreak() {
		d -= e.BreakEnd.Sub(e.BreakStart)
	}
	if d < 0 {
		return 0
	}
	return d
}

// Overlaps reports whether a valid entry overlaps the window [start, end).
func (e TimeEntry) Overlaps(start, end Clock) bool {
	return e.Valid() && Overlaps(e.Start, e.End, start, end)
}

// IsEmpty reports whether the entry carries no data at all.
func (e TimeEntry) IsEmpty() bool {
	return e == TimeEntry{}
}

func (e TimeEntry) String() string {
	s := fmt.Sprintf("%s-%s", e.Start, e.End)
	if e.HasBreak() {
		s += fmt.Sprintf(" (break %s-%s)", e.BreakStart, e.BreakEnd)
	}
	if !e.Assignment.IsNone() {
		s += " " + string(e.Assignment)
	}
	return s
}

// Block distinguishes the regular working times from additional duties.
type Block int

const (
	// Primary holds the regular working times (two slots per day).
	Primary Block = iota
	// Additional holds secondary duties that may overlap primary times
	// (four slots per day).
	Additional
)

// Size returns the number of entry slots per day in the block.
func (b Block) Size() int {
	if b == Additional {
		return 4
	}
	return 2
}

func (b Block) String() string {
	if b == Additional {
		return "additional"
	}
	return "primary"
}

// Slot identifies one entry position of a day.
type Slot struct {
	Block Block `json:"block"`
	Index int   `json:"index"`
}

func (s Slot) String() string { return fmt.Sprintf("%s#%d", s.Block, s.Index+1) }

// Slots lists every entry slot of a day in canonical order: both primary
// slots, then the four additional slots.
var Slots = []Slot{
	{Primary, 0}, {Primary, 1},
	{Additional, 0}, {Additional, 1}, {Additional, 2}, {Additional, 3},
}

// SlotEntry is an entry tagged with the slot it was read from.
type SlotEntry struct {
	Slot  Slot      `json:"slot"`
	Entry TimeEntry `json:"entry"`
}

// DaySchedule holds the entries of one block on one day. Entries has
// exactly Block.Size() elements.
type DaySchedule struct {
	Day     Weekday     `json:"day"`
	Entries []TimeEntry `json:"entries"`
}
