// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p0, p1 Point
		x      float64
		want   float64
	}{
		{
			name: "midpoint",
			p0:   Point{X: 0, Y: 0},
			p1:   Point{X: 1, Y: 1},
			x:    0.5,
			want: 0.5,
		},
		{
			name: "at left point",
			p0:   Point{X: 3, Y: 0.25},
			p1:   Point{X: 4, Y: -0.75},
			x:    3,
			want: 0.25,
		},
		{
			name: "at right point",
			p0:   Point{X: 3, Y: 0.25},
			p1:   Point{X: 4, Y: -0.75},
			x:    4,
			want: -0.75,
		},
		{
			name: "descending quarter",
			p0:   Point{X: 10, Y: 1},
			p1:   Point{X: 11, Y: 0},
			x:    10.25,
			want: 0.75,
		},
		{
			name: "wide span",
			p0:   Point{X: 0, Y: 0},
			p1:   Point{X: 4, Y: 2},
			x:    1,
			want: 0.5,
		},
		{
			name: "flat line",
			p0:   Point{X: 7, Y: 0.3},
			p1:   Point{X: 8, Y: 0.3},
			x:    7.9,
			want: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Lerp(tt.p0, tt.p1, tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.p0, tt.p1, tt.x, got, tt.want)
			}
		})
	}
}

func TestLerp_Extrapolates(t *testing.T) {
	t.Parallel()

	// Outside [p0.X, p1.X] the line simply continues
	got := Lerp(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, 2)
	if got != 2 {
		t.Errorf("Lerp() = %v, want 2", got)
	}
}
