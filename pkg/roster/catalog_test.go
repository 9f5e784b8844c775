package roster

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog()
	c.Add("Igel", Style{Abbreviation: "IG", Color: "#ff9900"})
	c.Add("Büro", Style{Abbreviation: "BÜ"})

	if got := c.Lookup("Igel"); got.Color != "#ff9900" {
		t.Errorf("Lookup(Igel) = %+v", got)
	}
	if got := c.Lookup("Büro"); got.Color != DefaultStyle.Color || got.Abbreviation != "BÜ" {
		t.Errorf("Lookup(Büro) = %+v, want default color", got)
	}
	if got := c.Lookup("Unbekannt"); got != DefaultStyle {
		t.Errorf("Lookup(unknown) = %+v, want %+v", got, DefaultStyle)
	}

	var nilCatalog *Catalog
	if got := nilCatalog.Lookup("Igel"); got != DefaultStyle {
		t.Errorf("nil Lookup = %+v", got)
	}
}

func TestCatalogGroups(t *testing.T) {
	c := NewCatalog()
	for _, a := range []Assignment{"A", "B", "C", "D", "E", "F", "G", "H"} {
		c.Add(a, Style{})
	}
	c.Add("A", Style{Color: "#000000"})

	groups := c.Groups(DefaultGroupCount)
	if len(groups) != 6 || groups[0] != "A" || groups[5] != "F" {
		t.Errorf("Groups(6) = %v", groups)
	}
	if got := c.Groups(20); len(got) != 8 {
		t.Errorf("Groups(20) = %v", got)
	}
}

func TestCatalogJSONKeepsOrder(t *testing.T) {
	c := NewCatalog()
	c.Add("Zebra", Style{Abbreviation: "Z"})
	c.Add("Affe", Style{Abbreviation: "A"})

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var back Catalog
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	got := back.Assignments()
	if len(got) != 2 || got[0] != "Zebra" || got[1] != "Affe" {
		t.Errorf("round trip order = %v", got)
	}
}

func TestWeekDates(t *testing.T) {
	w := Week{Header: Header{StartDate: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)}}
	w.Events = []SpecialEvent{
		NewSpecialEvent("Teamsitzung", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), At(14, 0), At(16, 0), CrossCutting),
		NewSpecialEvent("Ausflug", time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), Clock{}, Clock{}, "Igel"),
	}

	if got := w.Date(Friday); got.Day() != 22 {
		t.Errorf("Date(Friday) = %v", got)
	}
	if got := w.EventsOn(Wednesday); len(got) != 1 || got[0].Name != "Teamsitzung" {
		t.Errorf("EventsOn(Wednesday) = %v", got)
	}
	if _, ok := w.DayOf(w.Events[1].Date); ok {
		t.Error("event of the following week should not map into this week")
	}
}

func TestSpecialEventWindow(t *testing.T) {
	date := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	ev := NewSpecialEvent("Fortbildung", date, Clock{}, Clock{}, "Igel")
	start, end := ev.Window()
	if start != At(0, 0) || end != At(23, 0) || !ev.AllDay() {
		t.Errorf("Window() = %v-%v, AllDay = %v", start, end, ev.AllDay())
	}

	again := NewSpecialEvent("Fortbildung", date, Clock{}, Clock{}, "Igel")
	if ev.ID != again.ID {
		t.Error("event IDs should be deterministic")
	}
	if !ev.Matches("Igel") || ev.Matches("Bären") {
		t.Error("Matches should compare the target")
	}
}

func TestDirectoryQualifications(t *testing.T) {
	d := Directory{
		"Alice": {Qualification: "Fachkraft"},
		"Bob":   {Qualification: "Ergänzungskraft"},
		"Carla": {Qualification: "Fachkraft"},
		"Dora":  {},
	}
	got := d.Qualifications()
	if len(got) != 2 || got[0] != "Ergänzungskraft" || got[1] != "Fachkraft" {
		t.Errorf("Qualifications() = %v", got)
	}
}
