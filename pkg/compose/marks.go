package compose

import "github.com/matzehuels/cardsheets/pkg/layout"

// MarkThickness is the stroke width of crop and registration marks, in points.
const MarkThickness = 0.5

// CropMarks returns the eight crop-mark segments for a card at pos with the
// given size. Each corner of the bleed box gets one horizontal and one
// vertical arm of length markLen, both starting at the corner and pointing
// away from the card.
//
// Order: top-left, top-right, bottom-left, bottom-right; horizontal arm
// before vertical arm.
func CropMarks(pos layout.Point, size layout.Dimensions, bleed, markLen float64) [8]layout.Segment {
	left := pos.X - bleed
	right := pos.X + size.Width + bleed
	bottom := pos.Y - bleed
	top := pos.Y + size.Height + bleed

	seg := func(x1, y1, x2, y2 float64) layout.Segment {
		return layout.Segment{From: layout.Point{X: x1, Y: y1}, To: layout.Point{X: x2, Y: y2}}
	}

	return [8]layout.Segment{
		seg(left-markLen, top, left, top),
		seg(left, top, left, top+markLen),
		seg(right, top, right+markLen, top),
		seg(right, top, right, top+markLen),
		seg(left-markLen, bottom, left, bottom),
		seg(left, bottom-markLen, left, bottom),
		seg(right, bottom, right+markLen, bottom),
		seg(right, bottom-markLen, right, bottom),
	}
}

// Crosshairs returns page registration marks: a cross centered horizontally
// in the bottom margin and another in the top margin. The crosses sit on the
// page's vertical center line, so they land on the same spot of the front
// and the mirrored back. Each cross is centered in the band between the page
// edge and the outer ends of the grid's crop marks, which reach markLength
// past the bleed box; crosses that do not fit in that band are omitted.
func Crosshairs(plan layout.Plan) []layout.Segment {
	if plan.Empty() || plan.MarkLength <= 0 {
		return nil
	}

	arm := plan.MarkLength / 2
	band := plan.GridOrigin.Y - plan.Bleed - plan.MarkLength
	if arm > band/2 {
		return nil
	}

	cx := plan.PageSize.Width / 2
	bottomY := band / 2
	topY := plan.PageSize.Height - band/2

	var marks []layout.Segment
	for _, cy := range []float64{bottomY, topY} {
		marks = append(marks,
			layout.Segment{From: layout.Point{X: cx - arm, Y: cy}, To: layout.Point{X: cx + arm, Y: cy}},
			layout.Segment{From: layout.Point{X: cx, Y: cy - arm}, To: layout.Point{X: cx, Y: cy + arm}},
		)
	}
	return marks
}
