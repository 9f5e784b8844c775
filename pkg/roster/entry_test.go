package roster

import (
	"testing"
	"time"
)

func TestTimeEntryValid(t *testing.T) {
	tests := []struct {
		name  string
		entry TimeEntry
		want  bool
	}{
		{"ordered", TimeEntry{Start: At(8, 0), End: At(16, 0)}, true},
		{"zero length", TimeEntry{Start: At(8, 0), End: At(8, 0)}, true},
		{"reversed", TimeEntry{Start: At(16, 0), End: At(8, 0)}, false},
		{"missing end", TimeEntry{Start: At(8, 0)}, false},
		{"missing start", TimeEntry{End: At(8, 0)}, false},
		{"empty", TimeEntry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeEntryDuration(t *testing.T) {
	tests := []struct {
		name  string
		entry TimeEntry
		want  time.Duration
	}{
		{
			name:  "with break",
			entry: TimeEntry{Start: At(8, 0), End: At(16, 0), BreakStart: At(12, 0), BreakEnd: At(12, 30)},
			want:  7*time.Hour + 30*time.Minute,
		},
		{
			name:  "dangling break ignored",
			entry: TimeEntry{Start: At(8, 0), End: At(16, 0), BreakStart: At(12, 0)},
			want:  8 * time.Hour,
		},
		{
			name:  "reversed break ignored",
			entry: TimeEntry{Start: At(8, 0), End: At(12, 0), BreakStart: At(11, 0), BreakEnd: At(10, 0)},
			want:  4 * time.Hour,
		},
		{
			name:  "invalid entry",
			entry: TimeEntry{Start: At(16, 0), End: At(8, 0)},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotsOrder(t *testing.T) {
	if len(Slots) != Primary.Size()+Additional.Size() {
		t.Fatalf("len(Slots) = %d", len(Slots))
	}
	if Slots[0] != (Slot{Primary, 0}) || Slots[2] != (Slot{Additional, 0}) {
		t.Errorf("unexpected slot order: %v", Slots)
	}
	if got := Slots[5].String(); got != "additional#4" {
		t.Errorf("Slots[5].String() = %q", got)
	}
}

func TestEmployeeEntries(t *testing.T) {
	emp := EmployeeSchedule{
		Name: "Bob",
		Primary: []DaySchedule{{Day: Monday, Entries: []TimeEntry{
			{Start: At(8, 0), End: At(16, 0), Assignment: "GroupB"}, {},
		}}},
		Additional: []DaySchedule{{Day: Monday, Entries: []TimeEntry{
			{Start: At(9, 0), End: At(10, 0), Assignment: "GroupA"}, {}, {}, {},
		}}},
	}

	entries := emp.Entries(Monday)
	if len(entries) != 6 {
		t.Fatalf("len(Entries) = %d, want 6", len(entries))
	}
	if entries[2].Entry.Assignment != "GroupA" || entries[2].Slot.Block != Additional {
		t.Errorf("entries[2] = %+v", entries[2])
	}
	if got := emp.Entries(Tuesday); len(got) != 0 {
		t.Errorf("Entries(Tuesday) = %v, want none", got)
	}
	if got := emp.BlockEntries(Primary, Monday); len(got) != 2 {
		t.Errorf("BlockEntries(Primary) = %d entries, want 2", len(got))
	}
}

func TestParseAssignment(t *testing.T) {
	if ParseAssignment(" - ") != None {
		t.Error(`ParseAssignment("-") should be None`)
	}
	if ParseAssignment(" Igel ") != "Igel" {
		t.Error("ParseAssignment should trim")
	}
}
