package roster

import (
	"strings"

	"github.com/dienstplan/dienstplan/pkg/errors"
)

// Weekday is one of the five planned working days.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays lists the planned days in sheet order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [...]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}

var englishNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Valid reports whether d is one of the five planned days.
func (d Weekday) Valid() bool { return d >= Monday && d <= Friday }

// Index returns the zero-based position of d within the week.
func (d Weekday) Index() int { return int(d) }

// String returns the German day name used on the roster sheets.
func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(?)"
	}
	return weekdayNames[d]
}

// English returns the English day name.
func (d Weekday) English() string {
	if !d.Valid() {
		return ""
	}
	return englishNames[d]
}

// ParseWeekday accepts German or English day names (case-insensitive),
// their three-letter abbreviations, or the 1-based day number.
func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
		return Weekday(key[0] - '1'), nil
	}
	for _, d := range Weekdays {
		de := strings.ToLower(weekdayNames[d])
		en := strings.ToLower(englishNames[d])
		if key == de || key == en || (len(key) == 3 && (key == de[:3] || key == en[:3])) {
			return d, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDay, "unknown weekday: %q", s)
}

// MarshalText encodes the German day name.
func (d Weekday) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts anything ParseWeekday accepts.
func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
