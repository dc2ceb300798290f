// Package position provides the 2-D integer coordinate shared by every grid
// and point-set solver in this module.
//
// What:
//
//   - Position{X, Y} is a comparable value, so it can key maps and sets directly.
//   - Adjacent lists the orthogonal (4) neighbours inside a W×H rectangle.
//   - Surrounding lists all eight neighbours inside a W×H rectangle.
//   - Parse reads the "x,y" form used by the fold and vent inputs.
//
// Invariant:
//
//   - Every neighbour returned for an in-bounds position is itself in bounds.
//
// Complexity:
//
//   - Adjacent, Surrounding: O(1) time, at most 4 or 8 allocations-free appends.
package position
