package compose

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

func letterPlan() layout.Plan {
	return layout.NewPlan(layout.Config{
		CardSize:   layout.Dimensions{Width: 2.5, Height: 3.5},
		PageSize:   layout.Letter,
		Margin:     0.25,
		Spacing:    0.125,
		Bleed:      0.125,
		MarkLength: layout.DefaultMarkLength,
	})
}

func makeCards(prefix string, side card.Side, n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = card.Card{
			Source: fmt.Sprintf("%s_%d.png", prefix, i+1),
			Side:   side,
			Format: card.FormatPNG,
		}
	}
	return cards
}

func TestComposeEightFrontsAndBacks(t *testing.T) {
	plan := letterPlan()
	if plan.CardsPerPage != 6 {
		t.Fatalf("CardsPerPage = %d, want 6", plan.CardsPerPage)
	}

	fronts, err := Compose(makeCards("front", card.Front, 8), plan, Options{})
	if err != nil {
		t.Fatalf("Compose(fronts): %v", err)
	}
	backs, err := Compose(makeCards("back", card.Back, 8), plan, Options{Mirror: true})
	if err != nil {
		t.Fatalf("Compose(backs): %v", err)
	}

	for _, sheet := range []*Sheet{fronts, backs} {
		if sheet.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", sheet.Len())
		}
		if n := len(sheet.Page(0).Cards); n != 6 {
			t.Errorf("page 1 has %d cards, want 6", n)
		}
		if n := len(sheet.Page(1).Cards); n != 2 {
			t.Errorf("page 2 has %d cards, want 2", n)
		}
	}

	// Fronts: left to right within each row.
	wantFrontCols := []int{0, 1, 2, 0, 1, 2}
	for i, pc := range fronts.Page(0).Cards {
		if pc.Column != wantFrontCols[i] {
			t.Errorf("front slot %d column = %d, want %d", i, pc.Column, wantFrontCols[i])
		}
		if want := fmt.Sprintf("front_%d.png", i+1); pc.Card.Source != want {
			t.Errorf("front slot %d = %s, want %s", i, pc.Card.Source, want)
		}
	}

	// Backs: right to left within each row, rows unchanged.
	wantBackCols := []int{2, 1, 0, 2, 1, 0}
	for i, pc := range backs.Page(0).Cards {
		if pc.Column != wantBackCols[i] {
			t.Errorf("back slot %d column = %d, want %d", i, pc.Column, wantBackCols[i])
		}
		if pc.Row != i/3 {
			t.Errorf("back slot %d row = %d, want %d", i, pc.Row, i/3)
		}
	}

	// Each back lands where its front lands after flipping the sheet
	// around the page's vertical center line.
	pageW := plan.PageSize.Width
	for i := range 6 {
		f := fronts.Page(0).Cards[i]
		b := backs.Page(0).Cards[i]
		flippedX := pageW - (b.Position.X + b.Size.Width)
		if math.Abs(flippedX-f.Position.X) > 1e-9 || b.Position.Y != f.Position.Y {
			t.Errorf("slot %d: back at %+v does not register with front at %+v", i, b.Position, f.Position)
		}
	}
}

func TestSlotPositionRowZeroIsTop(t *testing.T) {
	plan := letterPlan()

	_, _, top := SlotPosition(plan, 0, false)
	_, _, bottom := SlotPosition(plan, 3, false)
	if top.Y <= bottom.Y {
		t.Errorf("row 0 y = %v, row 1 y = %v; row 0 should be higher", top.Y, bottom.Y)
	}

	// Bottom row sits on the grid origin.
	if bottom != plan.GridOrigin {
		t.Errorf("slot 3 position = %+v, want grid origin %+v", bottom, plan.GridOrigin)
	}
	wantTop := layout.Point{X: plan.GridOrigin.X, Y: plan.GridOrigin.Y + plan.Pitch().Height}
	if top != wantTop {
		t.Errorf("slot 0 position = %+v, want %+v", top, wantTop)
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	plan := letterPlan()
	for i := range plan.CardsPerPage {
		col, row, _ := SlotPosition(plan, i, true)
		// Mirroring the mirrored column restores the original one.
		twice := plan.Columns - 1 - col
		wantCol, wantRow, _ := SlotPosition(plan, i, false)
		if twice != wantCol || row != wantRow {
			t.Errorf("slot %d: mirror twice = (%d, %d), want (%d, %d)", i, twice, row, wantCol, wantRow)
		}
	}
}

func TestComposeCapacityError(t *testing.T) {
	plan := layout.NewPlan(layout.Config{
		CardSize: layout.Dimensions{Width: 9, Height: 12},
		PageSize: layout.Letter,
		Margin:   0.25,
	})
	if plan.Columns != 0 {
		t.Fatalf("Columns = %d, want 0", plan.Columns)
	}

	_, err := Compose(makeCards("front", card.Front, 1), plan, Options{})
	if err == nil {
		t.Fatal("Compose should fail when nothing fits")
	}
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeConfiguration)
	}

	sheet, err := Compose(nil, plan, Options{})
	if err != nil {
		t.Fatalf("Compose(nil) on empty plan: %v", err)
	}
	if sheet.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sheet.Len())
	}
}

func TestComposePageCounts(t *testing.T) {
	plan := letterPlan()
	for n := 0; n <= 25; n++ {
		sheet, err := Compose(makeCards("c", card.Front, n), plan, Options{})
		if err != nil {
			t.Fatalf("Compose(%d): %v", n, err)
		}
		want := (n + 5) / 6
		if sheet.Len() != want {
			t.Errorf("n=%d: Len() = %d, want %d", n, sheet.Len(), want)
		}

		seen := 0
		for page := range sheet.Pages() {
			if page.Number != seen/6+1 {
				t.Errorf("n=%d: page number %d, want %d", n, page.Number, seen/6+1)
			}
			if page.Number < want && len(page.Cards) != 6 {
				t.Errorf("n=%d: page %d has %d cards, want 6", n, page.Number, len(page.Cards))
			}
			for _, pc := range page.Cards {
				if w := fmt.Sprintf("c_%d.png", seen+1); pc.Card.Source != w {
					t.Errorf("n=%d: card %s out of order, want %s", n, pc.Card.Source, w)
				}
				seen++
			}
		}
		if seen != n {
			t.Errorf("n=%d: placed %d cards", n, seen)
		}
	}
}

func TestPagesRestartable(t *testing.T) {
	sheet, err := Compose(makeCards("c", card.Front, 13), letterPlan(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	count := func() int {
		n := 0
		for range sheet.Pages() {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 3 || b != 3 {
		t.Errorf("page counts = %d, %d, want 3, 3", a, b)
	}

	// Early break stops iteration.
	n := 0
	for range sheet.Pages() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations after break = %d, want 1", n)
	}
}

func TestComposeCopiesInput(t *testing.T) {
	cards := makeCards("c", card.Front, 2)
	sheet, err := Compose(cards, letterPlan(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	cards[0].Source = "changed.png"
	if got := sheet.Page(0).Cards[0].Card.Source; got != "c_1.png" {
		t.Errorf("sheet saw caller mutation: %s", got)
	}
}

func TestPageOutOfRangePanics(t *testing.T) {
	sheet, _ := Compose(makeCards("c", card.Front, 1), letterPlan(), Options{})
	defer func() {
		if recover() == nil {
			t.Error("Page(1) should panic")
		}
	}()
	sheet.Page(1)
}
