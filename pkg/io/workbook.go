package io

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/grid"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// Sheet names of the roster workbook.
const (
	PlanningSheet = "Dienstplanung"
	StaffSheet    = "Mitarbeiterliste"
	EventsSheet   = "Sondertermine"
)

// DefaultHeaderRows is the number of planning rows above the first
// employee block.
const DefaultHeaderRows = 12

// Planning header positions: column B of these rows.
const (
	headerCol       = 1
	yearRow         = 0
	calendarWeekRow = 1
	startDateRow    = 3
	endDateRow      = 5
)

// titleRows precede the data of the staff and events sheets.
const titleRows = 2

// WorkbookOptions configures workbook decoding.
type WorkbookOptions struct {
	// HeaderRows is the number of planning rows before the first employee
	// block. Defaults to [DefaultHeaderRows].
	HeaderRows int

	// Grid is passed to [grid.Parse].
	Grid grid.Options

	// OnInvalidCell, when set, receives cells of the staff and events
	// sheets that could not be decoded. The planning grid reports through
	// Grid.OnInvalidCell.
	OnInvalidCell func(sheet string, row, col int, value string, err error)
}

func (o WorkbookOptions) withDefaults() WorkbookOptions {
	if o.HeaderRows == 0 {
		o.HeaderRows = DefaultHeaderRows
	}
	return o
}

func (o WorkbookOptions) invalid(sheet string, row, col int, value string, err error) {
	if o.OnInvalidCell != nil {
		o.OnInvalidCell(sheet, row, col, value, err)
	}
}

// OpenWorkbook reads the roster workbook at path.
func OpenWorkbook(path string, opts WorkbookOptions) (*roster.Week, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadWorkbook(f, opts)
}

// ReadWorkbook decodes a roster workbook from r. The planning sheet is
// required; missing staff or events sheets yield an empty directory,
// catalog or event list.
func ReadWorkbook(r io.Reader, opts WorkbookOptions) (*roster.Week, error) {
	opts = opts.withDefaults()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "open workbook")
	}
	defer func() { _ = f.Close() }()

	planning, err := sheetMatrix(f, PlanningSheet)
	if err != nil {
		return nil, err
	}
	if planning == nil {
		return nil, errors.New(errors.ErrCodeInvalidWorkbook, "sheet %q not found", PlanningSheet)
	}

	header, err := readHeader(planning)
	if err != nil {
		return nil, err
	}

	week := &roster.Week{
		Header:  header,
		Catalog: roster.NewCatalog(),
		Staff:   roster.Directory{},
	}

	if len(planning) > opts.HeaderRows {
		data := padRows(planning[opts.HeaderRows:], grid.RowsPerEmployee)
		gopts := opts.Grid
		if cb := gopts.OnInvalidCell; cb != nil {
			gopts.OnInvalidCell = func(row, col int, value string, err error) {
				cb(row+opts.HeaderRows, col, value, err)
			}
		}
		week.Schedules, err = grid.Parse(data, gopts)
		if err != nil {
			return nil, err
		}
	}

	staff, err := sheetMatrix(f, StaffSheet)
	if err != nil {
		return nil, err
	}
	readStaff(staff, week, opts)

	events, err := sheetMatrix(f, EventsSheet)
	if err != nil {
		return nil, err
	}
	week.Events = readEvents(events, opts)

	return week, nil
}

// sheetMatrix returns the raw cell values of sheet, every row padded to
// the used width of the sheet. A missing sheet yields nil.
func sheetMatrix(f *excelize.File, sheet string) (grid.Matrix, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "read sheet %q", sheet)
	}

	width := grid.Matrix(rows).Width()
	if dim, err := f.GetSheetDimension(sheet); err == nil {
		if _, last, ok := strings.Cut(dim, ":"); ok {
			if col, _, err := excelize.CellNameToCoordinates(last); err == nil {
				width = max(width, col)
			}
		}
	}

	m := make(grid.Matrix, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		m[i] = padded
	}
	return m, nil
}

// padRows extends m with empty rows up to a multiple of n. Spreadsheet
// writers drop trailing blank rows, which may cut the last block short.
func padRows(m grid.Matrix, n int) grid.Matrix {
	width := m.Width()
	for len(m)%n != 0 {
		m = append(m, make([]string, width))
	}
	return m
}

func readHeader(m grid.Matrix) (roster.Header, error) {
	var h roster.Header
	var err error

	if h.Year, err = parseInt(m.Cell(yearRow, headerCol)); err != nil {
		return h, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "planning header: year")
	}
	if h.CalendarWeek, err = parseInt(m.Cell(calendarWeekRow, headerCol)); err != nil {
		return h, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "planning header: calendar week")
	}
	if h.StartDate, err = ParseDate(m.Cell(startDateRow, headerCol)); err != nil {
		return h, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "planning header: start date")
	}
	if h.EndDate, err = ParseDate(m.Cell(endDateRow, headerCol)); err != nil {
		return h, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "planning header: end date")
	}
	return h, nil
}

// Staff sheet columns.
const (
	staffName = iota
	staffQualification
	staffContractHours
	_
	catalogAssignment
	catalogAbbreviation
	catalogColor
)

func readStaff(m grid.Matrix, week *roster.Week, opts WorkbookOptions) {
	for r := titleRows; r < len(m); r++ {
		if name := m.Cell(r, staffName); name != "" {
			info := roster.StaffInfo{Qualification: m.Cell(r, staffQualification)}
			if v := m.Cell(r, staffContractHours); v != "" {
				h, err := parseFloat(v)
				if err != nil {
					opts.invalid(StaffSheet, r, staffContractHours, v, err)
				}
				info.ContractHours = h
			}
			week.Staff[name] = info
		}

		if a := m.Cell(r, catalogAssignment); a != "" {
			week.Catalog.Add(roster.Assignment(a), roster.Style{
				Abbreviation: m.Cell(r, catalogAbbreviation),
				Color:        m.Cell(r, catalogColor),
			})
		}
	}
}

// Events sheet columns.
const (
	eventName = iota
	eventDate
	eventStart
	eventEnd
	eventTarget
)

func readEvents(m grid.Matrix, opts WorkbookOptions) []roster.SpecialEvent {
	var out []roster.SpecialEvent
	for r := titleRows; r < len(m); r++ {
		name := m.Cell(r, eventName)
		if name == "" {
			continue
		}
		date, err := ParseDate(m.Cell(r, eventDate))
		if err != nil {
			opts.invalid(EventsSheet, r, eventDate, m.Cell(r, eventDate), err)
			continue
		}
		start := clockCell(m, r, eventStart, opts)
		end := clockCell(m, r, eventEnd, opts)
		target := roster.ParseAssignment(m.Cell(r, eventTarget))
		out = append(out, roster.NewSpecialEvent(name, date, start, end, target))
	}
	return out
}

func clockCell(m grid.Matrix, r, c int, opts WorkbookOptions) roster.Clock {
	v := m.Cell(r, c)
	clock, err := roster.ParseClock(v)
	if err != nil {
		opts.invalid(EventsSheet, r, c, v, err)
		return roster.Clock{}
	}
	return clock
}

var dateLayouts = []string{
	"02.01.2006",
	"2.1.2006",
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
}

// ParseDate parses a date cell: an Excel serial number or one of the
// common textual forms.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

func parseInt(s string) (int, error) {
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
