package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Page is one titled timeline.
type Page struct {
	Title string
	report.Timeline

	// Notes are printed below the legend.
	Notes []string
}

const dateLayout = "02.01.2006"

// EmployeePages returns one page per day of v.
func EmployeePages(v report.EmployeeView) []Page {
	pages := make([]Page, 0, len(v.Days))
	for _, d := range v.Days {
		pages = append(pages, Page{
			Title:    fmt.Sprintf("Dienstplan für %s, den %s", d.Day, formatDate(d.Date)),
			Timeline: d.Timeline,
		})
	}
	return pages
}

// GroupPages returns one page per group and day of v. Special events
// become notes listing the affected employees.
func GroupPages(v report.GroupView) []Page {
	pages := make([]Page, 0, len(v.Pages))
	for _, g := range v.Pages {
		p := Page{
			Title:    fmt.Sprintf("Gruppe %s: %s, den %s", g.Group, g.Day, formatDate(g.Date)),
			Timeline: g.Timeline,
		}
		for _, imp := range g.Events {
			p.Notes = append(p.Notes, eventNote(imp))
		}
		pages = append(pages, p)
	}
	return pages
}

func eventNote(imp query.EventImpact) string {
	ev := imp.Event
	when := "ganztägig"
	if !ev.AllDay() {
		start, end := ev.Window()
		when = fmt.Sprintf("%s-%s", start, end)
	}
	target := string(ev.Target)
	if ev.Target == roster.CrossCutting {
		target = "alle"
	}
	affected := "niemand"
	if len(imp.Affected) > 0 {
		affected = strings.Join(imp.Affected, ", ")
	}
	return fmt.Sprintf("%s (%s, %s): %s", ev.Name, when, target, affected)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return t.Format(dateLayout)
}
