// Package ingest turns a directory of card images into [card.Card] values.
//
// # Scanning
//
// [Scan] lists a directory (not recursively) and sorts its image files into
// fronts and backs using the back marker convention of [card.Classify]:
//
//	dragon.png    front
//	dragon+.png   back
//	notes.txt     ignored
//
// Files are returned in lexical filename order, the order [os.ReadDir]
// yields. Fronts and backs pair up position by position, so naming a back
// after its front ("dragon.png" / "dragon+.png") keeps each pair at the
// same index.
//
// # Loading
//
// [Load] reads every file eagerly and checks that it decodes as the format
// its suffix promises. The first missing or undecodable file aborts the load
// with an [errors.ErrCodeIngestion] error naming the file; composition never
// starts with a partial card set.
//
// With [Options.MaxDPI] set, cards whose pixel density at the printed card
// size exceeds the limit are resampled down (Lanczos) and re-encoded in
// their own format. This keeps oversized scans from bloating the output
// document; the compositor itself never touches pixels.
package ingest
