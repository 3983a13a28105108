// Package sink writes composed sheets to output formats.
//
// # Overview
//
// A "sink" replays a [compose.Sheet] into a final document. This package
// provides:
//
//   - PDF: print-ready pages built with gofpdf
//   - JSON: plan and placement export for external tools
//
// # PDF Output
//
// [RenderPDF] creates one page per composed page, sized from the plan in
// points, and replays [compose.Page.Ops] in order: background fill, then each
// card image followed by its crop marks, then registration marks. Each
// distinct card image is embedded once and referenced from every page that
// places it.
//
//	pdf, err := sink.RenderPDF(sheet,
//	    sink.WithTitle("Watcher fronts"),
//	)
//
// Identical input yields the same pages, images and metadata: the creation
// and modification dates are fixed (see [WithCreationDate]). The output is
// not byte-stable, though. gofpdf orders image objects by pixel width only
// and breaks ties in map order, so same-width cards may be numbered
// differently between runs. Compare rendered documents structurally; the
// pipeline cache keys on input content, not on output bytes.
//
// If the PDF writer rejects an image (for example an interlaced or 16-bit
// PNG), RenderPDF returns an [errors.ErrCodeAssembly] error whose cause is an
// [errors.AssemblyError] carrying the page number and card source.
//
// # JSON Output
//
// [RenderJSON] exports the plan and every placement (card position, size,
// source, crop marks) as pretty-printed JSON.
package sink
