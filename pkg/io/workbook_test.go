package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/grid"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

var monday = time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)

// set writes v at zero-based (row, col) of sheet.
func set(t *testing.T, f *excelize.File, sheet string, row, col int, v any) {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		t.Fatal(err)
	}
}

// fixture builds a workbook with two employees, a staff list and events.
func fixture(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	if err := f.SetSheetName("Sheet1", PlanningSheet); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{StaffSheet, EventsSheet} {
		if _, err := f.NewSheet(s); err != nil {
			t.Fatal(err)
		}
	}

	p := PlanningSheet
	set(t, f, p, 0, 1, 2024)
	set(t, f, p, 1, 1, 12)
	set(t, f, p, 3, 1, monday)
	set(t, f, p, 5, 1, "22.03.2024")

	top := DefaultHeaderRows
	set(t, f, p, top, 0, "Alice")
	// Monday primary: 08:00-16:00, break 12:00-12:30, Igel.
	set(t, f, p, top, 2, "08:00")
	set(t, f, p, top, 3, "16:00")
	set(t, f, p, top, 4, "12:00")
	set(t, f, p, top, 5, "12:30")
	set(t, f, p, top, 6, "Igel")
	// Tuesday additional slot 1 as day fractions.
	set(t, f, p, top+2, 8, 0.375)
	set(t, f, p, top+2, 9, 0.5)
	set(t, f, p, top+2, 12, "Sprachförderung")
	set(t, f, p, top, 32, 38.5)
	set(t, f, p, top, 33, -1.25)

	top += grid.RowsPerEmployee
	set(t, f, p, top, 0, "Bob")
	set(t, f, p, top, 26, "07:00")
	set(t, f, p, top, 27, "13:00")
	set(t, f, p, top, 30, "Bären")
	set(t, f, p, top, 32, 30)
	set(t, f, p, top, 33, "0,5")

	s := StaffSheet
	set(t, f, s, 0, 0, "Mitarbeiterliste")
	for i, row := range [][]any{
		{"Alice", "Fachkraft", 39, nil, "Igel", "IG", "#ffcc00"},
		{"Bob", "Ergänzungskraft", 30, nil, "Bären", "BÄ", ""},
		{nil, nil, nil, nil, "Sprachförderung", "SF", "#00aaff"},
	} {
		for c, v := range row {
			if v != nil {
				set(t, f, s, titleRows+i, c, v)
			}
		}
	}

	e := EventsSheet
	set(t, f, e, titleRows, 0, "Elternabend")
	set(t, f, e, titleRows, 1, monday.AddDate(0, 0, 2))
	set(t, f, e, titleRows, 2, "18:00")
	set(t, f, e, titleRows, 3, "20:00")
	set(t, f, e, titleRows, 4, "Übergreifend")
	set(t, f, e, titleRows+1, 0, "Waldtag")
	set(t, f, e, titleRows+1, 1, "19.03.2024")
	set(t, f, e, titleRows+1, 4, "Igel")
	set(t, f, e, titleRows+2, 0, "Kaputt")
	set(t, f, e, titleRows+2, 1, "irgendwann")
	return f
}

func read(t *testing.T, f *excelize.File, opts WorkbookOptions) (*roster.Week, error) {
	t.Helper()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return ReadWorkbook(bytes.NewReader(buf.Bytes()), opts)
}

func TestReadWorkbook(t *testing.T) {
	var invalid []string
	w, err := read(t, fixture(t), WorkbookOptions{
		OnInvalidCell: func(sheet string, _, _ int, value string, _ error) {
			invalid = append(invalid, sheet+":"+value)
		},
	})
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}

	if w.Year != 2024 || w.CalendarWeek != 12 {
		t.Errorf("header = %d/KW%d, want 2024/KW12", w.Year, w.CalendarWeek)
	}
	if !w.StartDate.Equal(monday) || !w.EndDate.Equal(monday.AddDate(0, 0, 4)) {
		t.Errorf("period = %v - %v", w.StartDate, w.EndDate)
	}

	if len(w.Schedules) != 2 {
		t.Fatalf("schedules = %d, want 2", len(w.Schedules))
	}
	alice, bob := w.Schedules[0], w.Schedules[1]

	got, _ := alice.Entry(roster.Monday, roster.Slot{Block: roster.Primary})
	wantEntry := roster.TimeEntry{
		Start:      roster.At(8, 0),
		End:        roster.At(16, 0),
		BreakStart: roster.At(12, 0),
		BreakEnd:   roster.At(12, 30),
		Assignment: "Igel",
	}
	if got != wantEntry {
		t.Errorf("Alice Monday = %v, want %v", got, wantEntry)
	}
	got, _ = alice.Entry(roster.Tuesday, roster.Slot{Block: roster.Additional})
	if got.Start != roster.At(9, 0) || got.End != roster.At(12, 0) || got.Assignment != "Sprachförderung" {
		t.Errorf("Alice Tuesday additional = %v", got)
	}
	if alice.WeeklyHours != 38.5 || alice.WeeklyBalance != -1.25 {
		t.Errorf("Alice totals = %v / %v", alice.WeeklyHours, alice.WeeklyBalance)
	}

	got, _ = bob.Entry(roster.Friday, roster.Slot{Block: roster.Primary})
	if got.Start != roster.At(7, 0) || got.Assignment != "Bären" {
		t.Errorf("Bob Friday = %v", got)
	}
	if bob.WeeklyBalance != 0.5 {
		t.Errorf("Bob balance = %v, want 0.5", bob.WeeklyBalance)
	}

	if info := w.Staff["Alice"]; info.Qualification != "Fachkraft" || info.ContractHours != 39 {
		t.Errorf("Alice staff = %+v", info)
	}
	if got := w.Catalog.Assignments(); !reflect.DeepEqual(got, []roster.Assignment{"Igel", "Bären", "Sprachförderung"}) {
		t.Errorf("catalog = %v", got)
	}
	if s := w.Catalog.Lookup("Bären"); s.Color != roster.DefaultStyle.Color || s.Abbreviation != "BÄ" {
		t.Errorf("Bären style = %+v", s)
	}

	if len(w.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(w.Events))
	}
	if ev := w.Events[0]; ev.Target != roster.CrossCutting || ev.Start != roster.At(18, 0) {
		t.Errorf("event 0 = %+v", ev)
	}
	if d, ok := w.DayOf(w.Events[1].Date); !ok || d != roster.Tuesday || !w.Events[1].AllDay() {
		t.Errorf("event 1 = %+v", w.Events[1])
	}
	if !reflect.DeepEqual(invalid, []string{EventsSheet + ":irgendwann"}) {
		t.Errorf("invalid cells = %v", invalid)
	}
}

func TestReadWorkbookIsRepeatable(t *testing.T) {
	f := fixture(t)
	a, err := read(t, f, WorkbookOptions{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := read(t, f, WorkbookOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Schedules, b.Schedules) || !reflect.DeepEqual(a.Events, b.Events) {
		t.Error("reading the same workbook twice differs")
	}
}

func TestReadWorkbookErrors(t *testing.T) {
	t.Run("not a workbook", func(t *testing.T) {
		_, err := ReadWorkbook(bytes.NewReader([]byte("plain text")), WorkbookOptions{})
		if !errors.Is(err, errors.ErrCodeInvalidWorkbook) {
			t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidWorkbook)
		}
	})

	t.Run("missing planning sheet", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		_, err := read(t, f, WorkbookOptions{})
		if !errors.Is(err, errors.ErrCodeInvalidWorkbook) {
			t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidWorkbook)
		}
	})

	t.Run("bad header", func(t *testing.T) {
		f := fixture(t)
		set(t, f, PlanningSheet, 1, 1, "KW zwölf")
		_, err := read(t, f, WorkbookOptions{})
		if !errors.Is(err, errors.ErrCodeInvalidWorkbook) {
			t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidWorkbook)
		}
	})

	t.Run("narrow grid", func(t *testing.T) {
		f := fixture(t)
		_, err := read(t, f, WorkbookOptions{Grid: grid.Options{ColumnsPerDay: 7}})
		if !errors.Is(err, errors.ErrCodeInvalidGrid) {
			t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidGrid)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), WorkbookOptions{})
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("err = %v, want %s", err, errors.ErrCodeFileNotFound)
		}
	})
}

func TestOpenWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "KW12.xlsx")
	if err := fixture(t).SaveAs(path); err != nil {
		t.Fatal(err)
	}
	w, err := OpenWorkbook(path, WorkbookOptions{})
	if err != nil {
		t.Fatalf("OpenWorkbook: %v", err)
	}
	if w.CalendarWeek != 12 || len(w.Schedules) != 2 {
		t.Errorf("week = KW%d with %d schedules", w.CalendarWeek, len(w.Schedules))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"45369", monday, false},
		{"18.03.2024", monday, false},
		{"2024-03-18", monday, false},
		{"2024-03-18 00:00:00", monday, false},
		{"", time.Time{}, true},
		{"März", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
