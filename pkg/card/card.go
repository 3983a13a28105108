// Package card defines the card image model shared by ingestion, the page
// compositor and the document sinks.
//
// A [Card] is classified exactly once, when it is ingested: its [Side] comes
// from the file-naming convention (a marker at the end of the file stem
// denotes a back), and its [Format] comes from the file suffix. Neither is
// re-derived later; the compositor and sinks treat [Card.Data] as opaque.
package card

import (
	"path/filepath"
	"strings"
)

// DefaultBackMarker marks back images: "dragon+.png" is the back of a card.
const DefaultBackMarker = "+"

// Side says which face of the physical card an image prints on.
type Side int

const (
	Front Side = iota
	Back
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// Format is a raster encoding the document writer can embed.
type Format string

const (
	FormatUnknown Format = ""
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
)

// DetectFormat returns the image format implied by name's suffix.
// Matching is case-insensitive; unknown suffixes yield [FormatUnknown].
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatUnknown
	}
}

// Classify reports whether name is a card image and which side it prints on.
// A file whose stem ends in marker is a back; any other image is a front.
func Classify(name, marker string) (Side, bool) {
	if DetectFormat(name) == FormatUnknown {
		return Front, false
	}
	if marker == "" {
		marker = DefaultBackMarker
	}
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.HasSuffix(stem, marker) {
		return Back, true
	}
	return Front, true
}

// Card is one card face ready for placement.
type Card struct {
	// Source identifies the image, usually its file path.
	Source string
	Side   Side
	Format Format

	// Data is the encoded image, handed to the document writer untouched.
	Data []byte

	// PixelWidth and PixelHeight are the decoded image dimensions.
	PixelWidth  int
	PixelHeight int
}

// Name returns the base name of the card's source.
func (c Card) Name() string {
	return filepath.Base(c.Source)
}

// DPI returns the horizontal and vertical pixel density when the card is
// printed at widthIn x heightIn inches. It returns zeros for a zero size.
func (c Card) DPI(widthIn, heightIn float64) (x, y float64) {
	if widthIn <= 0 || heightIn <= 0 {
		return 0, 0
	}
	return float64(c.PixelWidth) / widthIn, float64(c.PixelHeight) / heightIn
}
