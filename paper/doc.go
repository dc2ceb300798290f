// Package paper folds a sheet of transparent paper marked with dots.
//
// A fold along y=k reflects every dot below the line onto the upper half;
// a fold along x=k reflects every dot right of the line onto the left half.
// Overlapping dots merge. Dots lying on the fold line vanish with it.
//
// Coordinates are never negative: NewSheet rejects such dots with
// ErrNegativeDot, and a fold that would reflect a dot past the top or left
// edge fails with ErrFoldPastOrigin.
package paper
