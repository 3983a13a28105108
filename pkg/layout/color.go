package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/cardsheets/pkg/errors"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Black is the neutral crop-mark color used when none is configured.
var Black = Color{}

// White is full-intensity white.
var White = Color{R: 1, G: 1, B: 1}

// RGB8 returns the color as 8-bit channel values, rounding to nearest.
func (c Color) RGB8() (r, g, b int) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

func to8(v float64) int {
	v = min(max(v, 0), 1)
	return int(v*255 + 0.5)
}

// ParseColor parses a color in one of these notations:
//
//	#rrggbb      hex, e.g. "#6c0dbe"
//	#rgb         short hex, e.g. "#fff"
//	r,g,b        floats in [0, 1], e.g. "0.9, 0.9, 1"
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "empty color")
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color %q (want #rrggbb, #rgb or r,g,b)", s)
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		if v < 0 || v > 1 {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color %q: component %g out of range [0, 1]", s, v)
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseHex(s string) (Color, error) {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}
