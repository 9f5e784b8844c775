package nodelink

import (
	"strings"
	"testing"

	"github.com/dienstplan/dienstplan/pkg/report"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

func testPages() []report.GroupDay {
	igel := roster.Style{Abbreviation: "IG", Color: "#ffcc00"}
	baeren := roster.Style{Abbreviation: "BÄ", Color: "#aa5500"}
	sf := roster.Style{Abbreviation: "SF", Color: "#00aaff"}
	return []report.GroupDay{
		{
			Group: "Igel",
			Style: igel,
			Timeline: report.Timeline{Rows: []report.Row{
				{Name: "Alice", Bars: []report.Bar{
					{Start: roster.At(8, 0), End: roster.At(12, 0), Assignment: "Igel", Style: igel},
					{Start: roster.At(10, 0), End: roster.At(11, 0), Assignment: "Sprachförderung", Style: sf, Secondary: true},
				}},
				{Name: "Bob", Bars: []report.Bar{
					{Start: roster.At(9, 0), End: roster.At(10, 0), Assignment: "Igel", Style: igel},
					{Start: roster.At(7, 0), End: roster.At(13, 0), Assignment: "Bären", Style: baeren, Secondary: true},
				}},
			}},
		},
		{
			Group: "Bären",
			Style: baeren,
			Timeline: report.Timeline{Rows: []report.Row{
				{Name: "Bob", Bars: []report.Bar{
					{Start: roster.At(7, 0), End: roster.At(13, 0), Assignment: "Bären", Style: baeren},
				}},
			}},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testPages(), Options{})

	for _, want := range []string{
		"digraph G",
		`"group:Igel" [label="Igel", shape=ellipse, fillcolor="#ffcc00"]`,
		`"employee:Alice" [label="Alice"]`,
		`"employee:Alice" -> "group:Igel";`,
		`"employee:Alice" -> "group:Sprachförderung" [style=dashed];`,
		`"group:Sprachförderung" [label="Sprachförderung", style="rounded,filled,dashed"`,
		`"employee:Bob" -> "group:Bären" [style=dashed];`,
		`"employee:Bob" -> "group:Bären";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in\n%s", want, dot)
		}
	}

	if n := strings.Count(dot, `"employee:Bob" [label=`); n != 1 {
		t.Errorf("Bob declared %d times, want 1", n)
	}
	// Bären is a group page of its own, so no extra dashed node.
	if strings.Contains(dot, `"group:Bären" [label="Bären", style=`) {
		t.Error("group declared as secondary assignment")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testPages(), Options{Detailed: true})
	if !strings.Contains(dot, `"employee:Alice" -> "group:Igel" [label="08:00-12:00"];`) {
		t.Errorf("detailed output missing time range:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(nil) = %q", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}
