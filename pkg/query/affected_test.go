package query

import (
	"reflect"
	"testing"
	"time"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

func TestAffectedEmployees(t *testing.T) {
	alice := shift(newEmployee("Alice"), roster.Wednesday, p1, "08:00", "12:00", "Igel")
	alice = shift(alice, roster.Wednesday, a1, "14:00", "15:00", "Igel")
	bob := shift(newEmployee("Bob"), roster.Wednesday, p1, "12:00", "17:00", "Bären")
	carla := shift(newEmployee("Carla"), roster.Wednesday, p1, "15:00", "09:00", "Igel")
	dora := shift(newEmployee("Dora"), roster.Wednesday, a2, "13:00", "14:30", "Igel")
	emil := shift(newEmployee("Emil"), roster.Wednesday, p1, "09:00", "", "Igel")

	e := New([]roster.EmployeeSchedule{alice, bob, carla, dora, emil}, Options{})

	tests := []struct {
		name       string
		target     roster.Assignment
		start, end roster.Clock
		want       []string
	}{
		{"all day group event", "Igel", roster.Clock{}, roster.Clock{}, []string{"Alice", "Dora"}},
		{"cross cutting afternoon", roster.CrossCutting, roster.At(14, 0), roster.At(16, 0), []string{"Alice", "Bob", "Dora"}},
		{"touching window excluded", "Igel", roster.At(12, 0), roster.At(13, 0), nil},
		{"open end defaults to 23:00", "Bären", roster.At(16, 30), roster.Clock{}, []string{"Bob"}},
		{"unknown group", "Füchse", roster.Clock{}, roster.Clock{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.AffectedEmployees(roster.Wednesday, tt.target, tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AffectedEmployees() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAffectedByEvents(t *testing.T) {
	start := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	alice := shift(newEmployee("Alice"), roster.Tuesday, p1, "08:00", "12:00", "Igel")
	bob := shift(newEmployee("Bob"), roster.Tuesday, p1, "13:00", "17:00", "Bären")

	w := &roster.Week{
		Header:    roster.Header{StartDate: start},
		Schedules: []roster.EmployeeSchedule{alice, bob},
		Events: []roster.SpecialEvent{
			roster.NewSpecialEvent("Elternabend", start.AddDate(0, 0, 1), roster.At(16, 0), roster.At(18, 0), roster.CrossCutting),
			roster.NewSpecialEvent("Waldtag", start.AddDate(0, 0, 1), roster.Clock{}, roster.Clock{}, "Igel"),
			roster.NewSpecialEvent("Putztag", start.AddDate(0, 0, 2), roster.Clock{}, roster.Clock{}, roster.CrossCutting),
		},
	}

	e := New(w.Schedules, Options{})
	got := e.AffectedByEvents(w, roster.Tuesday)
	if len(got) != 2 {
		t.Fatalf("impacts = %d, want 2", len(got))
	}
	if !reflect.DeepEqual(got[0].Affected, []string{"Bob"}) {
		t.Errorf("Elternabend affected = %v, want [Bob]", got[0].Affected)
	}
	if !reflect.DeepEqual(got[1].Affected, []string{"Alice"}) {
		t.Errorf("Waldtag affected = %v, want [Alice]", got[1].Affected)
	}

	outside := roster.NewSpecialEvent("Sommerfest", start.AddDate(0, 0, 9), roster.Clock{}, roster.Clock{}, roster.CrossCutting)
	if got := e.AffectedByEvent(w, outside); got != nil {
		t.Errorf("event outside the week affected %v", got)
	}
}
