package layout_test

import (
	"fmt"

	"github.com/matzehuels/cardsheets/pkg/layout"
)

func ExampleNewPlan() {
	plan := layout.NewPlan(layout.Config{
		CardSize: layout.Dimensions{Width: 2.5, Height: 3.5},
		PageSize: layout.Letter,
		Margin:   0.25,
		Spacing:  0.125,
		Bleed:    0.125,
	})

	fmt.Println("Columns:", plan.Columns)
	fmt.Println("Rows:", plan.Rows)
	fmt.Println("Cards per page:", plan.CardsPerPage)
	fmt.Printf("Grid origin: (%.1f, %.1f)\n", plan.GridOrigin.X, plan.GridOrigin.Y)
	// Output:
	// Columns: 3
	// Rows: 2
	// Cards per page: 6
	// Grid origin: (27.0, 139.5)
}

func ExamplePlan_Empty() {
	plan := layout.NewPlan(layout.Config{
		CardSize: layout.Dimensions{Width: 9, Height: 12},
		PageSize: layout.Letter,
		Margin:   0.25,
	})

	fmt.Println("Empty:", plan.Empty())
	fmt.Println("Pages for 8 cards:", plan.PageCount(8))
	// Output:
	// Empty: true
	// Pages for 8 cards: 0
}
