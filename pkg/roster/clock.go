package roster

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Clock is a time of day with minute resolution.
// The zero value is an absent time.
type Clock struct {
	minutes int
	set     bool
}

// At returns the clock time h:m. Values outside a day wrap around.
func At(h, m int) Clock {
	mins := ((h*60+m)%minutesPerDay + minutesPerDay) % minutesPerDay
	return Clock{minutes: mins, set: true}
}

// IsSet reports whether the clock holds a time.
func (c Clock) IsSet() bool { return c.set }

// Minutes returns the minutes since midnight; zero for an absent time.
func (c Clock) Minutes() int { return c.minutes }

// Hours returns the time as fractional hours since midnight (08:30 -> 8.5).
func (c Clock) Hours() float64 { return float64(c.minutes) / 60 }

// Before reports whether c is strictly earlier than o.
func (c Clock) Before(o Clock) bool { return c.minutes < o.minutes }

// Sub returns the duration between o and c.
func (c Clock) Sub(o Clock) time.Duration {
	return time.Duration(c.minutes-o.minutes) * time.Minute
}

// String formats the time as HH:MM, or "" when absent.
func (c Clock) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// Or returns c if it is set and fallback otherwise.
func (c Clock) Or(fallback Clock) Clock {
	if c.set {
		return c
	}
	return fallback
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04:05 PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseClock parses a cell value into a Clock.
//
// Accepted forms are "8:00", "08:00", "08:00:00", 12-hour clock values and
// Excel day fractions such as "0.333333" (08:00). Empty strings and the
// sheet placeholder "-" yield an absent time and no error.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Clock{}, nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 || f >= 1 {
			return Clock{}, fmt.Errorf("day fraction out of range: %s", s)
		}
		return Clock{minutes: int(math.Round(f * minutesPerDay)), set: true}.norm(), nil
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return At(t.Hour(), t.Minute()), nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time of day: %q", s)
}

// MustClock is like ParseClock but panics on malformed input.
// It is meant for literals in tests and defaults.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) norm() Clock {
	if c.minutes >= minutesPerDay {
		c.minutes = minutesPerDay - 1
	}
	return c
}

// MarshalJSON encodes the time as "HH:MM" or null.
func (c Clock) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes "HH:MM" or null.
func (c *Clock) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Clock{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText lets clocks be used in TOML and YAML configuration.
func (c Clock) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText parses the HH:MM form.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share any time. Touching intervals do not overlap.
func Overlaps(s1, e1, s2, e2 Clock) bool {
	return s1.minutes < e2.minutes && s2.minutes < e1.minutes
}
