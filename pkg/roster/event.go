package roster

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// eventNamespace scopes the deterministic special-event identifiers.
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dienstplan/special-event"))

// SpecialEvent is an entry of the special-dates sheet: a dated occasion
// that concerns the staff of one assignment, or everyone when Target is
// [CrossCutting].
type SpecialEvent struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Date   time.Time  `json:"date"`
	Start  Clock      `json:"start"`
	End    Clock      `json:"end"`
	Target Assignment `json:"target"`
}

// NewSpecialEvent builds an event with an identifier derived from its
// content, so reading the same sheet twice yields the same IDs.
func NewSpecialEvent(name string, date time.Time, start, end Clock, target Assignment) SpecialEvent {
	key := fmt.Sprintf("%s|%s|%s|%s|%s", name, date.Format(time.DateOnly), start, end, target)
	return SpecialEvent{
		ID:     uuid.NewSHA1(eventNamespace, []byte(key)),
		Name:   name,
		Date:   date,
		Start:  start,
		End:    end,
		Target: target,
	}
}

// Default bounds of an event without recorded times.
var (
	AllDayStart = At(0, 0)
	AllDayEnd   = At(23, 0)
)

// AllDay reports whether the event has no recorded times.
func (e SpecialEvent) AllDay() bool { return !e.Start.IsSet() && !e.End.IsSet() }

// Window returns the event interval, substituting 00:00 and 23:00 for
// missing bounds.
func (e SpecialEvent) Window() (Clock, Clock) {
	return e.Start.Or(AllDayStart), e.End.Or(AllDayEnd)
}

// Matches reports whether an entry assignment is targeted by the event.
func (e SpecialEvent) Matches(a Assignment) bool {
	return e.Target == CrossCutting || e.Target == a
}
