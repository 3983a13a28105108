package layout

import "math"

// PointsPerInch converts configuration lengths (inches) to PDF points.
// It is the only place physical units enter the layout engine.
const PointsPerInch = 72.0

// Common page sizes in inches.
var (
	Letter  = Dimensions{Width: 8.5, Height: 11}
	Tabloid = Dimensions{Width: 11, Height: 17}
	ArchB   = Dimensions{Width: 12, Height: 18}
	A4      = Dimensions{Width: 210 / 25.4, Height: 297 / 25.4}
)

// Dimensions is a width/height pair.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale returns d with both sides multiplied by f.
func (d Dimensions) Scale(f float64) Dimensions {
	return Dimensions{Width: d.Width * f, Height: d.Height * f}
}

// Point is a position in page coordinates (origin bottom-left, Y up).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Segment is a straight line between two points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Closest returns the point on s nearest to p.
func (s Segment) Closest(p Point) Point {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return s.From
	}
	t := ((p.X-s.From.X)*dx + (p.Y-s.From.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return Point{X: s.From.X + t*dx, Y: s.From.Y + t*dy}
}

// Rect is an axis-aligned rectangle given by its bottom-left corner and size.
type Rect struct {
	Origin Point      `json:"origin"`
	Size   Dimensions `json:"size"`
}

// Left returns the minimum X of the rectangle.
func (r Rect) Left() float64 { return r.Origin.X }

// Right returns the maximum X of the rectangle.
func (r Rect) Right() float64 { return r.Origin.X + r.Size.Width }

// Bottom returns the minimum Y of the rectangle.
func (r Rect) Bottom() float64 { return r.Origin.Y }

// Top returns the maximum Y of the rectangle.
func (r Rect) Top() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Outset grows the rectangle by d on every side.
func (r Rect) Outset(d float64) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X - d, Y: r.Origin.Y - d},
		Size:   Dimensions{Width: r.Size.Width + 2*d, Height: r.Size.Height + 2*d},
	}
}

// ContainsStrict reports whether p lies strictly inside r (not on its edge).
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.Left() && p.X < r.Right() && p.Y > r.Bottom() && p.Y < r.Top()
}
