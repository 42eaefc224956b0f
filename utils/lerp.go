// SPDX-License-Identifier: EPL-2.0

package utils

// Point is a sample value (Y) at a position (X) on the source time axis.
type Point struct {
	X float64
	Y float64
}

// Lerp evaluates the straight line through p0 and p1 at x using the
// one-multiply form: p0.Y + slope*(p1.Y-p0.Y).
//
// p0.X and p1.X must differ. Callers that may hit an exact sample position
// should short-circuit before calling.
func Lerp(p0, p1 Point, x float64) float64 {
	slope := (x - p0.X) / (p1.X - p0.X)
	return p0.Y + slope*(p1.Y-p0.Y)
}
