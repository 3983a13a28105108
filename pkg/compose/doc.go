// Package compose lays cards out on pages according to a [layout.Plan].
//
// # Overview
//
// [Compose] takes an ordered list of cards, a plan and [Options], and returns
// a [Sheet]: a lazy, restartable sequence of [Page] values. Pages are built
// on demand by [Sheet.Page] or by ranging over [Sheet.Pages]; nothing is
// cached and nothing reads from storage, so composition cannot fail once
// the capacity check in [Compose] has passed.
//
// # Placement
//
// Cards fill each page row-major, row 0 being the top row:
//
//	col = i % columns          (columns-1-col when mirrored)
//	row = i / columns
//	x   = origin.X + col*(cardWidth  + spacing)
//	y   = origin.Y + (rows-1-row)*(cardHeight + spacing)
//
// Mirroring reverses the column order inside each row and leaves rows in
// place. A back sheet composed with [Options.Mirror] lines up under its
// front sheet once the paper is flipped along its vertical axis.
//
// # Crop Marks
//
// Every card gets eight marks, an L at each corner of its bleed box
// (the card rectangle grown by the plan's bleed). Each arm is MarkLength
// long and points away from the card. See [CropMarks].
//
// # Draw Operations
//
// [Page.Ops] flattens a page into the ordered draw operations a document
// writer replays: the background fill first (if any), then for each card its
// image followed by its eight marks, then page-level registration marks.
package compose
