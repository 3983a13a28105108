package ingest

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// jpegQuality is used when a resampled JPEG card is re-encoded.
const jpegQuality = 92

// Options configures [Load].
type Options struct {
	// CardSize is the printed card size in inches. Needed only for MaxDPI.
	CardSize layout.Dimensions

	// MaxDPI caps the pixel density of embedded images. Zero disables it.
	MaxDPI float64

	Logger *log.Logger
}

// Load reads and validates the images at paths, tagging each with side.
// It stops at the first failure.
func Load(ctx context.Context, paths []string, side card.Side, opts Options) ([]card.Card, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	cards := make([]card.Card, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := loadOne(path, side)
		if err != nil {
			return nil, err
		}

		if opts.MaxDPI > 0 {
			resampled, changed, err := capDPI(c, opts.CardSize, opts.MaxDPI)
			if err != nil {
				return nil, err
			}
			if changed {
				logger.Debug("resampled card", "card", c.Name(),
					"from", sizeString(c), "to", sizeString(resampled))
				c = resampled
			}
		}

		logger.Debug("loaded card", "card", c.Name(), "side", side, "format", c.Format, "bytes", len(c.Data))
		cards = append(cards, c)
	}
	return cards, nil
}

func loadOne(path string, side card.Side) (card.Card, error) {
	format := card.DetectFormat(path)
	if format == card.FormatUnknown {
		return card.Card{}, errors.New(errors.ErrCodeIngestion, "%s: unsupported image type", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return card.Card{}, errors.Wrap(errors.ErrCodeIngestion, err, "card %s not found", path)
		}
		return card.Card{}, errors.Wrap(errors.ErrCodeIngestion, err, "read card %s", path)
	}

	cfg, decoded, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return card.Card{}, errors.Wrap(errors.ErrCodeIngestion, err, "decode card %s", path)
	}
	if card.Format(decoded) != format {
		return card.Card{}, errors.New(errors.ErrCodeIngestion,
			"card %s: content is %s but the file name says %s", path, decoded, format)
	}

	return card.Card{
		Source:      path,
		Side:        side,
		Format:      format,
		Data:        data,
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
	}, nil
}

// capDPI resamples c so that neither axis exceeds maxDPI at the printed size.
func capDPI(c card.Card, size layout.Dimensions, maxDPI float64) (card.Card, bool, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return c, false, nil
	}
	w := min(c.PixelWidth, int(math.Round(size.Width*maxDPI)))
	h := min(c.PixelHeight, int(math.Round(size.Height*maxDPI)))
	if w == c.PixelWidth && h == c.PixelHeight {
		return c, false, nil
	}

	// EXIF orientation is ignored: the PDF writer embeds unresampled cards
	// as stored, so resampled ones must keep the same pixel layout.
	img, err := imaging.Decode(bytes.NewReader(c.Data))
	if err != nil {
		return c, false, errors.Wrap(errors.ErrCodeIngestion, err, "decode card %s", c.Source)
	}
	img = imaging.Resize(img, w, h, imaging.Lanczos)

	var buf bytes.Buffer
	switch c.Format {
	case card.FormatJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	default:
		err = imaging.Encode(&buf, img, imaging.PNG)
	}
	if err != nil {
		return c, false, errors.Wrap(errors.ErrCodeIngestion, err, "re-encode card %s", c.Source)
	}

	c.Data = buf.Bytes()
	c.PixelWidth, c.PixelHeight = w, h
	return c, true, nil
}

func sizeString(c card.Card) string {
	return fmt.Sprintf("%dx%d", c.PixelWidth, c.PixelHeight)
}
