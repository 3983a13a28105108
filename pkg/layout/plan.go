package layout

import "math"

// Plan is the derived sheet geometry for one run. Every length is in points.
// A Plan is immutable and safe to share between the front and back sheets.
type Plan struct {
	Columns      int   `json:"columns"`
	Rows         int   `json:"rows"`
	CardsPerPage int   `json:"cards_per_page"`
	GridOrigin   Point `json:"grid_origin"`

	PageSize   Dimensions `json:"page_size"`
	CardSize   Dimensions `json:"card_size"`
	Spacing    float64    `json:"spacing"`
	Bleed      float64    `json:"bleed"`
	MarkLength float64    `json:"mark_length"`
}

// NewPlan derives the sheet geometry from cfg. It never fails: a card that
// does not fit produces an empty plan.
func NewPlan(cfg Config) Plan {
	page := cfg.PageSize.Scale(PointsPerInch)
	card := cfg.CardSize.Scale(PointsPerInch)
	margin := cfg.Margin * PointsPerInch
	spacing := cfg.Spacing * PointsPerInch

	usableW := page.Width - 2*margin + spacing
	usableH := page.Height - 2*margin + spacing

	p := Plan{
		Columns:    fit(usableW, card.Width+spacing),
		Rows:       fit(usableH, card.Height+spacing),
		PageSize:   page,
		CardSize:   card,
		Spacing:    spacing,
		Bleed:      cfg.Bleed * PointsPerInch,
		MarkLength: cfg.MarkLength * PointsPerInch,
	}
	p.CardsPerPage = p.Columns * p.Rows

	grid := p.GridSize()
	p.GridOrigin = Point{
		X: (page.Width - grid.Width) / 2,
		Y: (page.Height - grid.Height) / 2,
	}
	return p
}

// fit returns how many pitches fit in span, clamped to zero.
func fit(span, pitch float64) int {
	if pitch <= 0 || span <= 0 {
		return 0
	}
	return max(int(math.Floor(span/pitch)), 0)
}

// Empty reports whether no card fits on a page.
func (p Plan) Empty() bool { return p.CardsPerPage == 0 }

// GridSize returns the extent of the card grid. An axis with no cards has
// zero extent.
func (p Plan) GridSize() Dimensions {
	return Dimensions{
		Width:  extent(p.Columns, p.CardSize.Width, p.Spacing),
		Height: extent(p.Rows, p.CardSize.Height, p.Spacing),
	}
}

func extent(n int, size, spacing float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*size + float64(n-1)*spacing
}

// Pitch returns the distance between the origins of adjacent cards.
func (p Plan) Pitch() Dimensions {
	return Dimensions{
		Width:  p.CardSize.Width + p.Spacing,
		Height: p.CardSize.Height + p.Spacing,
	}
}

// PageCount returns how many pages n cards need. It is zero for an empty plan.
func (p Plan) PageCount(n int) int {
	if p.Empty() || n <= 0 {
		return 0
	}
	return (n + p.CardsPerPage - 1) / p.CardsPerPage
}
