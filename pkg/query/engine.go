package query

import (
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Options configures the sentinels the engine recognizes.
type Options struct {
	// Absences never participate in group or bucket queries.
	// Defaults to [roster.Sick] and [roster.Leave].
	Absences []roster.Assignment

	// CrossCutting is the event target matching every assignment.
	// Defaults to [roster.CrossCutting].
	CrossCutting roster.Assignment
}

// Engine runs queries over a fixed set of schedules.
type Engine struct {
	schedules    []roster.EmployeeSchedule
	absences     map[roster.Assignment]bool
	crossCutting roster.Assignment
}

// New returns an engine over schedules. The slice is not copied and must
// not be modified afterwards.
func New(schedules []roster.EmployeeSchedule, opts Options) *Engine {
	if opts.Absences == nil {
		opts.Absences = []roster.Assignment{roster.Sick, roster.Leave}
	}
	if opts.CrossCutting == "" {
		opts.CrossCutting = roster.CrossCutting
	}
	abs := make(map[roster.Assignment]bool, len(opts.Absences))
	for _, a := range opts.Absences {
		abs[a] = true
	}
	return &Engine{schedules: schedules, absences: abs, crossCutting: opts.CrossCutting}
}

// Schedules returns the schedules the engine queries.
func (e *Engine) Schedules() []roster.EmployeeSchedule { return e.schedules }

// IsAbsence reports whether a is one of the absence sentinels.
func (e *Engine) IsAbsence(a roster.Assignment) bool { return e.absences[a] }

// validEntries returns the valid entries of day d accepted by keep, in
// slot order.
func validEntries(emp *roster.EmployeeSchedule, d roster.Weekday, keep func(roster.SlotEntry) bool) []roster.SlotEntry {
	var out []roster.SlotEntry
	for _, se := range emp.Entries(d) {
		if se.Entry.Valid() && keep(se) {
			out = append(out, se)
		}
	}
	return out
}

func anyEntry(roster.SlotEntry) bool { return true }

func primaryOnly(se roster.SlotEntry) bool { return se.Slot.Block == roster.Primary }
