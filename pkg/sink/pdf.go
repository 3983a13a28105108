package sink

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/matzehuels/cardsheets/pkg/buildinfo"
	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/compose"
	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// DefaultCreationDate is stamped into PDFs unless [WithCreationDate] is used.
var DefaultCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title   string
	author  string
	created time.Time
}

// WithTitle sets the document title.
func WithTitle(s string) PDFOption {
	return func(r *pdfRenderer) { r.title = s }
}

// WithAuthor sets the document author.
func WithAuthor(s string) PDFOption {
	return func(r *pdfRenderer) { r.author = s }
}

// WithCreationDate overrides the fixed creation date.
func WithCreationDate(t time.Time) PDFOption {
	return func(r *pdfRenderer) { r.created = t }
}

// RenderPDF renders every page of sheet into a PDF document.
// An empty sheet produces an error; there is nothing to print.
func RenderPDF(sheet *compose.Sheet, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{created: DefaultCreationDate}
	for _, opt := range opts {
		opt(&r)
	}

	if sheet.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sheet has no pages")
	}

	size := sheet.Plan().PageSize
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(r.created)
	pdf.SetModificationDate(r.created)
	pdf.SetCreator(buildinfo.UserAgent(), true)
	if r.title != "" {
		pdf.SetTitle(r.title, true)
	}
	if r.author != "" {
		pdf.SetAuthor(r.author, true)
	}

	w := pdfWriter{pdf: pdf, height: size.Height, images: make(map[string]string)}
	for page := range sheet.Pages() {
		if err := w.page(page); err != nil {
			return nil, errors.Wrap(errors.ErrCodeAssembly, err, "assemble PDF")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssembly, err, "write PDF")
	}
	return buf.Bytes(), nil
}

// pdfWriter replays draw operations. gofpdf measures Y from the top of the
// page; the layout engine measures from the bottom.
type pdfWriter struct {
	pdf    *gofpdf.Fpdf
	height float64
	images map[string]string // card source -> registered image name
}

func (w *pdfWriter) page(p compose.Page) error {
	w.pdf.AddPage()
	if w.pdf.Err() {
		return &errors.AssemblyError{Page: p.Number, Err: w.pdf.Error()}
	}

	for _, op := range p.Ops() {
		switch op.Kind {
		case compose.OpFill:
			w.fill(op.Rect, op.Color)
		case compose.OpLine:
			w.line(op.Line, op.Color, op.Thickness)
		case compose.OpImage:
			if err := w.image(op.Card, op.Rect); err != nil {
				return &errors.AssemblyError{Page: p.Number, Source: op.Card.Source, Err: err}
			}
		}
		if w.pdf.Err() {
			src := ""
			if op.Kind == compose.OpImage {
				src = op.Card.Source
			}
			return &errors.AssemblyError{Page: p.Number, Source: src, Err: w.pdf.Error()}
		}
	}
	return nil
}

func (w *pdfWriter) fill(r layout.Rect, c layout.Color) {
	red, green, blue := c.RGB8()
	w.pdf.SetFillColor(red, green, blue)
	w.pdf.Rect(r.Left(), w.height-r.Top(), r.Size.Width, r.Size.Height, "F")
}

func (w *pdfWriter) line(s layout.Segment, c layout.Color, thickness float64) {
	red, green, blue := c.RGB8()
	w.pdf.SetDrawColor(red, green, blue)
	w.pdf.SetLineWidth(thickness)
	w.pdf.Line(s.From.X, w.height-s.From.Y, s.To.X, w.height-s.To.Y)
}

func (w *pdfWriter) image(c card.Card, r layout.Rect) error {
	opts := gofpdf.ImageOptions{ImageType: imageType(c.Format)}
	if opts.ImageType == "" {
		return fmt.Errorf("unsupported image format %q", c.Format)
	}

	name, ok := w.images[c.Source]
	if !ok {
		name = fmt.Sprintf("card%d", len(w.images))
		w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(c.Data))
		if w.pdf.Err() {
			return w.pdf.Error()
		}
		w.images[c.Source] = name
	}

	w.pdf.ImageOptions(name, r.Left(), w.height-r.Top(), r.Size.Width, r.Size.Height, false, opts, 0, "")
	return nil
}

func imageType(f card.Format) string {
	switch f {
	case card.FormatPNG:
		return "PNG"
	case card.FormatJPEG:
		return "JPG"
	default:
		return ""
	}
}
