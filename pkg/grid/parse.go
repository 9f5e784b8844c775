package grid

import (
	"strconv"
	"strings"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

const (
	// RowsPerEmployee is the height of one employee block.
	RowsPerEmployee = 6

	// MetaColumns is the number of leading metadata columns.
	MetaColumns = 2

	// DefaultColumnsPerDay is the width of one weekday window including
	// the trailing spacer.
	DefaultColumnsPerDay = 6

	// fieldsPerEntry is start, end, break start, break end, assignment.
	fieldsPerEntry = 5
)

// Matrix is a raw cell matrix in row-major order. Rows may be ragged;
// cells past the end of a row are empty.
type Matrix [][]string

// Width returns the length of the longest row.
func (m Matrix) Width() int {
	w := 0
	for _, row := range m {
		w = max(w, len(row))
	}
	return w
}

// Cell returns the trimmed cell at (row, col), or "" when out of range.
func (m Matrix) Cell(row, col int) string {
	if row < 0 || row >= len(m) || col < 0 || col >= len(m[row]) {
		return ""
	}
	return strings.TrimSpace(m[row][col])
}

// Options configures the decoder.
type Options struct {
	// Days lists the weekdays in column order. Defaults to [roster.Weekdays].
	Days []roster.Weekday

	// ColumnsPerDay is the width of one weekday window. Defaults to
	// [DefaultColumnsPerDay].
	ColumnsPerDay int

	// OnInvalidCell, when set, is called for time or number cells that
	// could not be decoded. Such cells are treated as absent.
	OnInvalidCell func(row, col int, value string, err error)
}

func (o Options) withDefaults() Options {
	if len(o.Days) == 0 {
		o.Days = roster.Weekdays
	}
	if o.ColumnsPerDay == 0 {
		o.ColumnsPerDay = DefaultColumnsPerDay
	}
	return o
}

// ParseError reports a structural problem of the planning matrix. No
// partial result accompanies it.
type ParseError struct {
	Err *errors.Error
	Row int // offending row, -1 if not row specific
	Col int // offending column, -1 if not column specific
}

func (e *ParseError) Error() string { return e.Err.Error() }

// Unwrap exposes the coded error so errors.Is(err, errors.ErrCodeInvalidGrid)
// holds for every ParseError.
func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(row, col int, format string, args ...any) *ParseError {
	return &ParseError{
		Err: errors.New(errors.ErrCodeInvalidGrid, format, args...),
		Row: row,
		Col: col,
	}
}

// Parse decodes m into one schedule per non-empty employee block, in sheet
// order. Parse is a pure function of its inputs.
func Parse(m Matrix, opts Options) ([]roster.EmployeeSchedule, error) {
	opts = opts.withDefaults()
	if err := validate(m, opts); err != nil {
		return nil, err
	}

	d := decoder{m: m, opts: opts}
	var out []roster.EmployeeSchedule
	for top := 0; top < len(m); top += RowsPerEmployee {
		name := m.Cell(top, 0)
		if name == "" {
			continue
		}
		out = append(out, d.employee(top, name))
	}
	return out, nil
}

func validate(m Matrix, opts Options) error {
	if opts.ColumnsPerDay <= fieldsPerEntry {
		return parseErr(-1, -1, "columns per day must exceed %d, got %d", fieldsPerEntry, opts.ColumnsPerDay)
	}
	if len(m) == 0 || len(m)%RowsPerEmployee != 0 {
		return parseErr(len(m), -1, "matrix has %d rows, want a positive multiple of %d", len(m), RowsPerEmployee)
	}

	width := m.Width()
	for i := range opts.Days {
		last := dayColumn(i, opts.ColumnsPerDay) + opts.ColumnsPerDay - 2
		if last >= width {
			return parseErr(-1, last, "window of %s ends at column %d beyond matrix width %d", opts.Days[i], last, width)
		}
	}
	return nil
}

func dayColumn(dayIdx, colsPerDay int) int {
	return MetaColumns + dayIdx*colsPerDay
}

func totalsColumn(days, colsPerDay int) int {
	return MetaColumns + days*colsPerDay
}

type decoder struct {
	m    Matrix
	opts Options
}

func (d decoder) employee(top int, name string) roster.EmployeeSchedule {
	totals := totalsColumn(len(d.opts.Days), d.opts.ColumnsPerDay)
	return roster.EmployeeSchedule{
		Name:          name,
		Primary:       d.block(top, roster.Primary),
		Additional:    d.block(top+roster.Primary.Size(), roster.Additional),
		WeeklyHours:   roster.Round2(d.number(top, totals)),
		WeeklyBalance: roster.Round2(d.number(top, totals+1)),
	}
}

func (d decoder) block(firstRow int, b roster.Block) []roster.DaySchedule {
	days := make([]roster.DaySchedule, len(d.opts.Days))
	for i, day := range d.opts.Days {
		entries := make([]roster.TimeEntry, b.Size())
		for slot := range entries {
			entries[slot] = d.entry(firstRow+slot, dayColumn(i, d.opts.ColumnsPerDay))
		}
		days[i] = roster.DaySchedule{Day: day, Entries: entries}
	}
	return days
}

func (d decoder) entry(row, col int) roster.TimeEntry {
	return roster.TimeEntry{
		Start:      d.clock(row, col),
		End:        d.clock(row, col+1),
		BreakStart: d.clock(row, col+2),
		BreakEnd:   d.clock(row, col+3),
		Assignment: roster.ParseAssignment(d.m.Cell(row, col+4)),
	}
}

func (d decoder) clock(row, col int) roster.Clock {
	v := d.m.Cell(row, col)
	c, err := roster.ParseClock(v)
	if err != nil {
		d.invalid(row, col, v, err)
		return roster.Clock{}
	}
	return c
}

func (d decoder) number(row, col int) float64 {
	v := d.m.Cell(row, col)
	if v == "" || v == "-" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		d.invalid(row, col, v, err)
		return 0
	}
	return f
}

func (d decoder) invalid(row, col int, v string, err error) {
	if d.opts.OnInvalidCell != nil {
		d.opts.OnInvalidCell(row, col, v, err)
	}
}
