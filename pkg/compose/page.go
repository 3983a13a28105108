package compose

import (
	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// PlacedCard is one card positioned on a page.
type PlacedCard struct {
	Card card.Card

	// Slot is the card's index within the page, in input order.
	Slot   int
	Column int
	Row    int

	// Position is the bottom-left corner of the card in points.
	Position layout.Point
	Size     layout.Dimensions

	CropMarks [8]layout.Segment
}

// Bounds returns the card rectangle without bleed.
func (pc PlacedCard) Bounds() layout.Rect {
	return layout.Rect{Origin: pc.Position, Size: pc.Size}
}

// Page is the placement of one page's worth of cards.
type Page struct {
	// Number is 1-based.
	Number int
	Size   layout.Dimensions

	// Background is the paper fill drawn behind the cards, if any.
	Background *layout.Color
	MarkColor  layout.Color

	Cards []PlacedCard

	// Marks are page-level registration marks.
	Marks []layout.Segment
}

// OpKind identifies a draw operation.
type OpKind int

const (
	OpFill OpKind = iota
	OpImage
	OpLine
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpImage:
		return "image"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is a single draw operation for a document writer.
//
// OpFill uses Rect and Color. OpImage uses Rect and Card. OpLine uses Line,
// Color and Thickness.
type Op struct {
	Kind      OpKind
	Rect      layout.Rect
	Color     layout.Color
	Line      layout.Segment
	Thickness float64
	Card      card.Card
}

// Ops returns the page's draw operations in replay order.
func (p Page) Ops() []Op {
	n := len(p.Cards)*9 + len(p.Marks)
	if p.Background != nil {
		n++
	}
	ops := make([]Op, 0, n)

	if p.Background != nil {
		ops = append(ops, Op{
			Kind:  OpFill,
			Rect:  layout.Rect{Size: p.Size},
			Color: *p.Background,
		})
	}

	for _, pc := range p.Cards {
		ops = append(ops, Op{Kind: OpImage, Rect: pc.Bounds(), Card: pc.Card})
		for _, m := range pc.CropMarks {
			ops = append(ops, p.line(m))
		}
	}

	for _, m := range p.Marks {
		ops = append(ops, p.line(m))
	}
	return ops
}

func (p Page) line(s layout.Segment) Op {
	return Op{Kind: OpLine, Line: s, Color: p.MarkColor, Thickness: MarkThickness}
}
