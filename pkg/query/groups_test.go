package query

import (
	"reflect"
	"testing"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

func TestGroupMembershipAdditionalPrimaryMatch(t *testing.T) {
	alice := shift(newEmployee("Alice"), roster.Monday, p1, "08:00", "16:00", "GroupA")
	bob := shift(newEmployee("Bob"), roster.Monday, p1, "08:00", "16:00", "GroupB")
	bob = shift(bob, roster.Monday, a1, "09:00", "10:00", "GroupA")

	e := New([]roster.EmployeeSchedule{bob, alice}, Options{})
	got := e.GroupMembership("GroupA", roster.Monday)

	if names := memberNames(got); !reflect.DeepEqual(names, []string{"Alice", "Bob"}) {
		t.Fatalf("members = %v, want [Alice Bob]", names)
	}
	if got[1].Start() != roster.At(9, 0) {
		t.Errorf("Bob start = %v, want 09:00", got[1].Start())
	}
	if len(got[1].Secondary) != 1 || got[1].Secondary[0].Entry.Assignment != "GroupB" {
		t.Errorf("Bob secondary = %+v, want overlapping GroupB entry", got[1].Secondary)
	}
	if len(got[0].Secondary) != 0 {
		t.Errorf("Alice secondary = %+v, want none", got[0].Secondary)
	}
}

func TestGroupMembershipSecondary(t *testing.T) {
	carla := shift(newEmployee("Carla"), roster.Tuesday, p1, "08:00", "12:00", "Igel")
	carla = shift(carla, roster.Tuesday, p2, "12:00", "15:00", "Büro")
	carla = shift(carla, roster.Tuesday, a1, "10:00", "11:00", "Sprachförderung")
	carla = shift(carla, roster.Tuesday, a2, "09:00", "10:00", roster.Sick)

	e := New([]roster.EmployeeSchedule{carla}, Options{})
	got := e.GroupMembership("Igel", roster.Tuesday)
	if len(got) != 1 {
		t.Fatalf("members = %v", memberNames(got))
	}

	var secondary []roster.Assignment
	for _, se := range got[0].Secondary {
		secondary = append(secondary, se.Entry.Assignment)
	}
	// Büro only touches the primary interval; the absence never counts.
	if !reflect.DeepEqual(secondary, []roster.Assignment{"Sprachförderung"}) {
		t.Errorf("secondary = %v, want [Sprachförderung]", secondary)
	}
}

func TestGroupMembershipExclusions(t *testing.T) {
	dora := shift(newEmployee("Dora"), roster.Monday, p1, "16:00", "08:00", "Igel")
	emil := shift(newEmployee("Emil"), roster.Monday, p1, "08:00", "16:00", roster.Sick)
	finn := shift(newEmployee("Finn"), roster.Tuesday, p1, "08:00", "16:00", "Igel")

	e := New([]roster.EmployeeSchedule{dora, emil, finn}, Options{})

	tests := []struct {
		name   string
		target roster.Assignment
		day    roster.Weekday
	}{
		{"reversed interval", "Igel", roster.Monday},
		{"absence target", roster.Sick, roster.Monday},
		{"empty target", roster.None, roster.Monday},
		{"other day", "Igel", roster.Wednesday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.GroupMembership(tt.target, tt.day); len(got) != 0 {
				t.Errorf("GroupMembership(%q, %s) = %v, want none", tt.target, tt.day, memberNames(got))
			}
		})
	}
}

func TestGroupMembershipStableOrder(t *testing.T) {
	var schedules []roster.EmployeeSchedule
	for _, tc := range []struct{ name, start string }{
		{"Gina", "09:00"}, {"Hans", "07:30"}, {"Ida", "09:00"}, {"Jan", "07:30"},
	} {
		schedules = append(schedules, shift(newEmployee(tc.name), roster.Friday, p1, tc.start, "13:00", "Bären"))
	}

	e := New(schedules, Options{})
	got := memberNames(e.GroupMembership("Bären", roster.Friday))
	want := []string{"Hans", "Jan", "Gina", "Ida"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestQueriesAreRepeatable(t *testing.T) {
	alice := shift(newEmployee("Alice"), roster.Monday, p1, "07:00", "15:00", "GroupA")
	bob := shift(newEmployee("Bob"), roster.Monday, p1, "06:50", "07:20", "GroupB")
	e := New([]roster.EmployeeSchedule{alice, bob}, Options{})

	if !reflect.DeepEqual(e.GroupMembership("GroupA", roster.Monday), e.GroupMembership("GroupA", roster.Monday)) {
		t.Error("GroupMembership differs between runs")
	}
	if !reflect.DeepEqual(e.ShiftBucketing(DefaultShiftBuckets, roster.Monday), e.ShiftBucketing(DefaultShiftBuckets, roster.Monday)) {
		t.Error("ShiftBucketing differs between runs")
	}
	if !reflect.DeepEqual(e.AffectedEmployees(roster.Monday, roster.CrossCutting, roster.Clock{}, roster.Clock{}),
		e.AffectedEmployees(roster.Monday, roster.CrossCutting, roster.Clock{}, roster.Clock{})) {
		t.Error("AffectedEmployees differs between runs")
	}
}
