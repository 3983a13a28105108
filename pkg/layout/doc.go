// Package layout computes the sheet geometry for a run of uniformly sized cards.
//
// # Overview
//
// Given a card size, a page size, margins, inter-card spacing and bleed, the
// planner decides how many columns and rows of cards fit on one page and
// where the grid of cards sits. The result is a [Plan], a small immutable
// value that the page compositor consumes for every page of both the front
// and the back sheet.
//
// # Units
//
// A [Config] is expressed in inches. [NewPlan] converts every length to PDF
// points with the single factor [PointsPerInch]; everything downstream of the
// planner (compositor, sinks) works in points only.
//
// # Capacity
//
//	usable  = page - 2*margin + spacing
//	columns = floor(usableWidth  / (cardWidth  + spacing))
//	rows    = floor(usableHeight / (cardHeight + spacing))
//
// The "+ spacing" term lets the last card in a row or column omit its
// trailing gap. It reproduces the layouts of existing printed sheets and is
// kept as is.
//
// A card that does not fit yields zero columns or rows. That is a valid,
// empty plan ([Plan.Empty]); callers decide whether an empty plan is an
// error (it is when there are cards to place).
//
// # Centering
//
// The grid is centered on the page as a block:
//
//	gridWidth  = columns*cardWidth + (columns-1)*spacing
//	origin.X   = (pageWidth - gridWidth) / 2
//
// and symmetrically for Y. [Plan.GridOrigin] is the bottom-left corner of the
// grid in PDF coordinates (origin at the bottom-left of the page, Y up).
//
// # Example
//
//	plan := layout.NewPlan(layout.Config{
//	    CardSize: layout.Dimensions{Width: 2.5, Height: 3.5},
//	    PageSize: layout.Letter,
//	    Margin:   0.25,
//	    Spacing:  0.125,
//	    Bleed:    0.125,
//	})
//	fmt.Println(plan.Columns, plan.Rows, plan.CardsPerPage) // 3 2 6
package layout
