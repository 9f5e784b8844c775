package report

import (
	"time"

	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// GroupDay is the view of one care group on one day.
type GroupDay struct {
	Group roster.Assignment `json:"group"`
	Style roster.Style      `json:"style"`
	Day   roster.Weekday    `json:"day"`
	Date  time.Time         `json:"date"`
	Timeline

	// Events are the special events of the day that concern the group.
	Events []query.EventImpact `json:"events"`
}

// GroupView is the weekly group view, ordered by day, then group.
type GroupView struct {
	roster.Header
	Pages []GroupDay `json:"pages"`
}

// BuildGroupView lists, per day and group, the members working for the
// group. Entries for the group are drawn solid, overlapping entries for
// other assignments as secondary bars.
func BuildGroupView(w *roster.Week, opts Options) GroupView {
	opts = opts.withDefaults(w)
	e := query.New(w.Schedules, opts.Query)

	v := GroupView{Header: w.Header}
	for _, d := range opts.Days {
		impacts := e.AffectedByEvents(w, d)
		for _, g := range opts.Groups {
			var rows []Row
			for _, m := range e.GroupMembership(g, d) {
				rows = append(rows, newRow(m.Name, memberBars(m, w.Catalog), opts))
			}
			page := GroupDay{
				Group:    g,
				Style:    w.Catalog.Lookup(g),
				Day:      d,
				Date:     w.Date(d),
				Timeline: newTimeline(rows),
			}
			for _, imp := range impacts {
				if imp.Event.Target == g || imp.Event.Target == opts.crossCutting() {
					page.Events = append(page.Events, imp)
				}
			}
			v.Pages = append(v.Pages, page)
		}
	}
	return v
}

func memberBars(m query.Member, c *roster.Catalog) []Bar {
	bars := make([]Bar, 0, len(m.Primary)+len(m.Secondary))
	for _, se := range m.Primary {
		bars = append(bars, Bar{Start: se.Entry.Start, End: se.Entry.End, Assignment: se.Entry.Assignment, Style: c.Lookup(se.Entry.Assignment)})
	}
	for _, se := range m.Secondary {
		bars = append(bars, Bar{Start: se.Entry.Start, End: se.Entry.End, Assignment: se.Entry.Assignment, Style: c.Lookup(se.Entry.Assignment), Secondary: true})
	}
	return bars
}

func (o Options) crossCutting() roster.Assignment {
	if o.Query.CrossCutting != "" {
		return o.Query.CrossCutting
	}
	return roster.CrossCutting
}
