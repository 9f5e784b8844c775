package report

import (
	"time"

	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// AssignmentHours is an hour total of one assignment.
type AssignmentHours struct {
	Assignment roster.Assignment `json:"assignment"`
	Hours      float64           `json:"hours"`
}

// QualificationHours is an hour total of one qualification.
type QualificationHours struct {
	Qualification string  `json:"qualification"`
	Hours         float64 `json:"hours"`
}

// LeaderDay is the leadership summary of one day.
type LeaderDay struct {
	Day            roster.Weekday       `json:"day"`
	Date           time.Time            `json:"date"`
	Buckets        []query.BucketCount  `json:"buckets"`
	Groups         []AssignmentHours    `json:"groups"`
	Qualifications []QualificationHours `json:"qualifications"`
}

// LeaderView is the weekly leadership view.
type LeaderView struct {
	roster.Header
	Days []LeaderDay `json:"days"`

	// GroupTotals and QualificationTotals sum the days.
	GroupTotals         []AssignmentHours    `json:"group_totals"`
	QualificationTotals []QualificationHours `json:"qualification_totals"`
}

// BuildLeaderView computes bucket occupancy and hour totals per day for
// every group and every qualification of the staff directory.
func BuildLeaderView(w *roster.Week, opts Options) LeaderView {
	opts = opts.withDefaults(w)
	e := query.New(w.Schedules, opts.Query)
	quals := w.Staff.Qualifications()

	v := LeaderView{
		Header:              w.Header,
		GroupTotals:         make([]AssignmentHours, len(opts.Groups)),
		QualificationTotals: make([]QualificationHours, len(quals)),
	}
	for i, g := range opts.Groups {
		v.GroupTotals[i].Assignment = g
	}
	for i, q := range quals {
		v.QualificationTotals[i].Qualification = q
	}

	for _, d := range opts.Days {
		day := LeaderDay{Day: d, Date: w.Date(d), Buckets: e.ShiftBucketing(opts.Buckets, d)}
		for i, g := range opts.Groups {
			h := e.HoursByAssignment([]roster.Assignment{g}, d)
			day.Groups = append(day.Groups, AssignmentHours{Assignment: g, Hours: h})
			v.GroupTotals[i].Hours = roster.Round2(v.GroupTotals[i].Hours + h)
		}
		for i, q := range quals {
			h := e.HoursByQualification(w.Staff, q, d)
			day.Qualifications = append(day.Qualifications, QualificationHours{Qualification: q, Hours: h})
			v.QualificationTotals[i].Hours = roster.Round2(v.QualificationTotals[i].Hours + h)
		}
		v.Days = append(v.Days, day)
	}
	return v
}
