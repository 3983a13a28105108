package compose

import (
	"iter"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// Options configures one sheet (the fronts or the backs).
type Options struct {
	// Mirror reverses column order within each row (used for backs).
	Mirror bool

	// Background fills the whole page before any card is drawn.
	Background *layout.Color

	// MarkColor colors crop and registration marks; nil means [layout.Black].
	MarkColor *layout.Color

	// Crosshair adds page registration crosshairs (see [Crosshairs]).
	Crosshair bool
}

// Sheet is a composed, paginated sequence of cards. It is immutable; pages
// are computed on demand.
type Sheet struct {
	plan  layout.Plan
	cards []card.Card
	opts  Options
}

// Compose paginates cards onto pages described by plan.
//
// It fails with an [errors.ErrCodeConfiguration] error when there are cards
// but the plan fits none. An empty card list yields an empty sheet.
func Compose(cards []card.Card, plan layout.Plan, opts Options) (*Sheet, error) {
	if len(cards) > 0 && plan.Empty() {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"no card fits on the page: %gx%gpt card on %gx%gpt page gives %d columns and %d rows, %d cards to place",
			plan.CardSize.Width, plan.CardSize.Height,
			plan.PageSize.Width, plan.PageSize.Height,
			plan.Columns, plan.Rows, len(cards))
	}
	return &Sheet{
		plan:  plan,
		cards: append([]card.Card(nil), cards...),
		opts:  opts,
	}, nil
}

// Plan returns the geometry the sheet was composed with.
func (s *Sheet) Plan() layout.Plan { return s.plan }

// Options returns the sheet options.
func (s *Sheet) Options() Options { return s.opts }

// CardCount returns the number of cards on the sheet.
func (s *Sheet) CardCount() int { return len(s.cards) }

// Len returns the number of pages.
func (s *Sheet) Len() int { return s.plan.PageCount(len(s.cards)) }

// Page builds page i (0-based). It panics if i is out of range.
func (s *Sheet) Page(i int) Page {
	if i < 0 || i >= s.Len() {
		panic("compose: page index out of range")
	}

	per := s.plan.CardsPerPage
	start := i * per
	end := min(start+per, len(s.cards))
	slice := s.cards[start:end]

	markColor := layout.Black
	if s.opts.MarkColor != nil {
		markColor = *s.opts.MarkColor
	}

	page := Page{
		Number:     i + 1,
		Size:       s.plan.PageSize,
		Background: s.opts.Background,
		MarkColor:  markColor,
		Cards:      make([]PlacedCard, len(slice)),
	}

	for slot, c := range slice {
		col, row, pos := SlotPosition(s.plan, slot, s.opts.Mirror)
		page.Cards[slot] = PlacedCard{
			Card:      c,
			Slot:      slot,
			Column:    col,
			Row:       row,
			Position:  pos,
			Size:      s.plan.CardSize,
			CropMarks: CropMarks(pos, s.plan.CardSize, s.plan.Bleed, s.plan.MarkLength),
		}
	}

	if s.opts.Crosshair {
		page.Marks = Crosshairs(s.plan)
	}
	return page
}

// Pages yields every page in order. The sequence can be ranged any number
// of times.
func (s *Sheet) Pages() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		for i := range s.Len() {
			if !yield(s.Page(i)) {
				return
			}
		}
	}
}

// SlotPosition returns the grid column, row and bottom-left position of the
// slot-th card on a page. Row 0 is the top row.
func SlotPosition(plan layout.Plan, slot int, mirror bool) (col, row int, pos layout.Point) {
	col = slot % plan.Columns
	row = slot / plan.Columns
	if mirror {
		col = plan.Columns - 1 - col
	}
	pitch := plan.Pitch()
	pos = layout.Point{
		X: plan.GridOrigin.X + float64(col)*pitch.Width,
		Y: plan.GridOrigin.Y + float64(plan.Rows-1-row)*pitch.Height,
	}
	return col, row, pos
}
