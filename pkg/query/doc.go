// Package query answers the aggregation questions every report is built
// from: group membership, shift-bucket occupancy, employees affected by a
// special event and hour totals.
//
// All queries share one interval rule: two intervals overlap when
// start1 < end2 && start2 < end1, so intervals that merely touch do not
// overlap. Entries that are not [roster.TimeEntry.Valid] never take part in
// any query, and queries never fail: missing days or entries simply yield
// empty or zero results.
//
// An [Engine] wraps the parsed schedules and is safe for concurrent use,
// since it never mutates them.
package query
