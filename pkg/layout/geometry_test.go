package layout

import (
	"math"
	"testing"
)

func TestSegmentLength(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want float64
	}{
		{"horizontal", Segment{Point{0, 0}, Point{15, 0}}, 15},
		{"vertical", Segment{Point{3, 4}, Point{3, -6}}, 10},
		{"diagonal", Segment{Point{0, 0}, Point{3, 4}}, 5},
		{"degenerate", Segment{Point{1, 1}, Point{1, 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Length(); math.Abs(got-tt.want) > eps {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentClosest(t *testing.T) {
	seg := Segment{Point{0, 0}, Point{10, 0}}
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"above middle", Point{5, 3}, Point{5, 0}},
		{"before start", Point{-4, 2}, Point{0, 0}},
		{"past end", Point{14, -1}, Point{10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seg.Closest(tt.p); got != tt.want {
				t.Errorf("Closest(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{Origin: Point{10, 20}, Size: Dimensions{Width: 100, Height: 50}}

	if r.Left() != 10 || r.Right() != 110 || r.Bottom() != 20 || r.Top() != 70 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Right(), r.Bottom(), r.Top())
	}
	if c := r.Center(); c != (Point{60, 45}) {
		t.Errorf("Center() = %v, want (60, 45)", c)
	}

	o := r.Outset(5)
	if o.Left() != 5 || o.Right() != 115 || o.Bottom() != 15 || o.Top() != 75 {
		t.Errorf("Outset(5) edges = %v %v %v %v", o.Left(), o.Right(), o.Bottom(), o.Top())
	}

	if !r.ContainsStrict(Point{50, 30}) {
		t.Error("ContainsStrict should include interior points")
	}
	if r.ContainsStrict(Point{10, 30}) {
		t.Error("ContainsStrict should exclude edge points")
	}
}

func TestDimensionsScale(t *testing.T) {
	got := Dimensions{Width: 2.5, Height: 3.5}.Scale(PointsPerInch)
	if got != (Dimensions{Width: 180, Height: 252}) {
		t.Errorf("Scale() = %+v, want 180x252", got)
	}
}
