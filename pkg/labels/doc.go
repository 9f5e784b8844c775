// Package labels places time-stamp labels along one shared horizontal axis
// so that labels too close to each other never share a vertical level.
//
// Placement is a first-fit greedy pass over the labels sorted by x. Each
// label is compared only with labels placed before it and takes the lowest
// level none of its close predecessors uses. The result is not the minimum
// number of levels, but it is stable across runs, which keeps rendered
// timelines reproducible.
//
//	ls := labels.ForEntries("Alice/Montag", entries)
//	ls = labels.Assign(ls, labels.DefaultMinDistance)
//	height := labels.DefaultSpacing.Row(ls)
//
// The layout only assigns levels. Converting a level to a drawing
// coordinate is left to [Offsets], which renderers configure.
package labels
