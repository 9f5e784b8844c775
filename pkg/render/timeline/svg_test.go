package timeline

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dienstplan/dienstplan/pkg/labels"
	"github.com/dienstplan/dienstplan/pkg/query"
	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

func testTimeline() report.Timeline {
	igel := roster.Style{Abbreviation: "IG", Color: "#ffcc00"}
	sf := roster.Style{Abbreviation: "SF", Color: "#00aaff"}
	ls := labels.Assign([]labels.Label{
		{X: 8, Text: "08:00"}, {X: 8.05, Text: "08:03"}, {X: 12, Text: "12:00"},
	}, labels.DefaultMinDistance)
	return report.Timeline{
		Rows: []report.Row{{
			Name: "Alice & Co",
			Bars: []report.Bar{
				{Start: roster.At(8, 0), End: roster.At(12, 0), Assignment: "Igel", Style: igel},
				{Start: roster.At(8, 3), End: roster.At(9, 0), Assignment: "Sprachförderung", Style: sf, Secondary: true},
			},
			Labels: ls,
			Height: labels.DefaultSpacing.Row(ls),
		}},
		FirstHour: 7,
		LastHour:  13,
		Legend: []report.LegendItem{
			{Assignment: "Igel", Style: igel},
			{Assignment: "Sprachförderung", Style: sf, Secondary: true},
		},
	}
}

func TestRenderSVGIsWellFormed(t *testing.T) {
	pages := []Page{{Title: "Dienstplan für Montag", Timeline: testTimeline(), Notes: []string{"Waldtag <draußen>"}}}
	svg := RenderSVG(pages)

	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v", err)
		}
	}

	s := string(svg)
	for _, want := range []string{
		"Alice &amp; Co",
		`fill="#ffcc00"`,
		`fill-opacity="0.4"`,
		">SF<",
		">08:03<",
		">07:00<",
		">13:00<",
		"Sprachförderung (SF)",
		"Waldtag &lt;draußen&gt;",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGLabelLevels(t *testing.T) {
	r := newSVGRenderer()
	page := Page{Timeline: testTimeline()}

	var buf bytes.Buffer
	r.renderRow(&buf, page, page.Rows[0], 0)
	s := buf.String()

	// Level 0 sits 0.55 units below the bar center, level 1 0.3 units lower.
	center := defaultUnit
	for _, want := range []string{
		fmt.Sprintf(`y="%.1f" font-size="7" text-anchor="middle">08:00<`, center+0.55*defaultUnit),
		fmt.Sprintf(`y="%.1f" font-size="7" text-anchor="middle">08:03<`, center+0.85*defaultUnit),
	} {
		if !strings.Contains(s, want) {
			t.Errorf("row missing %q in\n%s", want, s)
		}
	}
}

func TestRenderSVGStacksPages(t *testing.T) {
	one := RenderSVG([]Page{{Timeline: testTimeline()}})
	two := RenderSVG([]Page{{Timeline: testTimeline()}, {Timeline: testTimeline()}})
	if height(t, two) <= height(t, one) {
		t.Errorf("two pages not taller than one")
	}
}

func height(t *testing.T, svg []byte) float64 {
	t.Helper()
	var doc struct {
		Height float64 `xml:"height,attr"`
	}
	if err := xml.Unmarshal(svg, &doc); err != nil {
		t.Fatal(err)
	}
	return doc.Height
}

func TestGroupPages(t *testing.T) {
	monday := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	v := report.GroupView{Pages: []report.GroupDay{{
		Group: "Igel",
		Day:   roster.Monday,
		Date:  monday,
		Events: []query.EventImpact{
			{Event: roster.NewSpecialEvent("Waldtag", monday, roster.Clock{}, roster.Clock{}, "Igel"), Affected: []string{"Alice", "Bob"}},
			{Event: roster.NewSpecialEvent("Teamsitzung", monday, roster.At(13, 0), roster.Clock{}, roster.CrossCutting)},
		},
	}}}

	pages := GroupPages(v)
	if len(pages) != 1 {
		t.Fatalf("pages = %d", len(pages))
	}
	if want := "Gruppe Igel: Montag, den 18.03.2024"; pages[0].Title != want {
		t.Errorf("title = %q, want %q", pages[0].Title, want)
	}
	want := []string{
		"Waldtag (ganztägig, Igel): Alice, Bob",
		"Teamsitzung (13:00-23:00, alle): niemand",
	}
	for i, n := range pages[0].Notes {
		if n != want[i] {
			t.Errorf("note %d = %q, want %q", i, n, want[i])
		}
	}
}

func TestEmployeePages(t *testing.T) {
	v := report.EmployeeView{Days: []report.EmployeeDay{{Day: roster.Friday}}}
	pages := EmployeePages(v)
	if len(pages) != 1 || pages[0].Title != "Dienstplan für Freitag, den ?" {
		t.Errorf("pages = %+v", pages)
	}
}
