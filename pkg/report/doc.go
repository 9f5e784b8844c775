// Package report assembles the three weekly views from a parsed week:
// the employee view (one timeline row per employee and day), the group
// view (the members of each care group per day together with the special
// events concerning it) and the leadership view (shift-bucket occupancy and
// hour totals).
//
// Views are plain data. Package render/timeline draws employee and group
// views, package render/summary the leadership view.
package report
