// Package grid decodes the fixed-layout planning sheet into employee
// schedules.
//
// The sheet is a matrix of cells. Every employee occupies a block of
// [RowsPerEmployee] consecutive rows:
//
//	row 0-1  primary block     one entry per weekday and row
//	row 2-5  additional block  one entry per weekday and row
//
// Columns 0 and 1 hold metadata (column 0 of the first row is the employee
// name). Weekday d starts at column 2 + d*ColumnsPerDay and its first
// ColumnsPerDay-1 cells are start, end, break start, break end and
// assignment; the last cell of a day is a spacer. The two columns following
// the last weekday carry the weekly hours and the weekly balance.
//
// Blocks whose name cell is empty are separators and are skipped. Missing
// cells mean "no shift". Only structural problems are errors: see
// [ParseError].
package grid
