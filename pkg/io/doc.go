// Package io reads roster workbooks and serializes parsed weeks.
//
// # Workbooks
//
// A roster workbook holds three sheets:
//
//   - "Dienstplanung": the planning grid. Column B of the leading header rows
//     carries the year, the calendar week and the start and end dates; the
//     employee blocks follow (see package grid for the block layout).
//   - "Mitarbeiterliste": the staff directory in columns A to C (name,
//     qualification, contract hours) and the assignment catalog in columns
//     E to G (assignment, abbreviation, color). Two title rows precede the
//     data.
//   - "Sondertermine": special events, one per row after two title rows:
//     name, date, optional start and end time, target assignment.
//
// Use [OpenWorkbook] for a file path or [ReadWorkbook] for any io.Reader:
//
//	week, err := io.OpenWorkbook("KW12.xlsx", io.WorkbookOptions{})
//
// Cells are read unformatted, so times arrive as day fractions and dates as
// serial numbers; both are converted here. Rows shortened by the
// spreadsheet writer are padded to the sheet's used width before decoding.
//
// # JSON
//
// [WriteJSON] and [ExportJSON] write a parsed [roster.Week] as indented
// JSON; [ReadJSON] and [ImportJSON] read it back. Exporting, importing and
// exporting again yields identical output.
package io
