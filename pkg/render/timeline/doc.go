// Package timeline draws employee and group views as SVG timelines.
//
// Each [Page] is one day (employee view) or one group on one day (group
// view). Pages are stacked vertically in a single SVG document. Rows use
// the heights computed by package report, so a row whose labels needed
// extra levels is drawn taller. Label positions come from
// [labels.Offsets]; primary entries are solid bars, secondary entries are
// translucent with a dashed outline and their abbreviation.
//
// [labels.Offsets]: github.com/dienstplan/dienstplan/pkg/labels.Offsets
package timeline
