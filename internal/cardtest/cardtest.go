// Package cardtest generates placeholder card images for tests: solid
// colored rectangles with a centered label.
package cardtest

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/cardsheets/pkg/card"
)

// Placeholder pixel size: 2.5x3.5 in at 200 dpi.
const (
	Width  = 500
	Height = 700
)

// Placeholder draws a card filled with the HSL color (hue, sat, light) and
// label in the middle.
func Placeholder(w, h int, hue, sat, light float64, label string) image.Image {
	dc := gg.NewContext(w, h)
	c := colorful.Hsl(hue, sat, light)
	dc.SetRGB(c.R, c.G, c.B)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(label, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image()
}

// Save writes img to dir/name, encoding by the name's extension.
func Save(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var err error
	switch filepath.Ext(name) {
	case ".png":
		err = gg.SavePNG(path, img)
	default:
		err = imaging.Save(img, path)
	}
	if err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
	return path
}

// Front writes the i-th (0-based) front placeholder as dir/card_NN.png.
func Front(t testing.TB, dir string, i int) string {
	t.Helper()
	img := Placeholder(Width, Height, float64(i*45%360), 0.6, 0.6, fmt.Sprintf("FRONT %d", i+1))
	return Save(t, dir, fmt.Sprintf("card_%02d.png", i+1), img)
}

// Back writes the i-th (0-based) back placeholder as dir/card_NN+.png.
func Back(t testing.TB, dir string, i int) string {
	t.Helper()
	img := Placeholder(Width, Height, float64((i*45+180)%360), 0.5, 0.5, fmt.Sprintf("BACK %d", i+1))
	return Save(t, dir, fmt.Sprintf("card_%02d+.png", i+1), img)
}

// Deck writes n front/back pairs into dir and returns their paths in
// scan order.
func Deck(t testing.TB, dir string, n int) (fronts, backs []string) {
	t.Helper()
	for i := range n {
		fronts = append(fronts, Front(t, dir, i))
		backs = append(backs, Back(t, dir, i))
	}
	return fronts, backs
}

// WriteFile writes raw bytes to dir/name, for malformed-input tests.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Card returns an in-memory PNG card with the given side and index, small
// enough to keep PDF tests fast.
func Card(t testing.TB, side card.Side, i int) card.Card {
	t.Helper()
	const w, h = 50, 70
	hue := float64(i * 45 % 360)
	if side == card.Back {
		hue = float64((i*45 + 180) % 360)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, Placeholder(w, h, hue, 0.6, 0.6, fmt.Sprint(i+1))); err != nil {
		t.Fatalf("encode card %d: %v", i, err)
	}
	name := fmt.Sprintf("card_%02d.png", i+1)
	if side == card.Back {
		name = fmt.Sprintf("card_%02d+.png", i+1)
	}
	return card.Card{
		Source:      name,
		Side:        side,
		Format:      card.FormatPNG,
		Data:        buf.Bytes(),
		PixelWidth:  w,
		PixelHeight: h,
	}
}

// Cards returns n in-memory cards of one side.
func Cards(t testing.TB, side card.Side, n int) []card.Card {
	t.Helper()
	out := make([]card.Card, n)
	for i := range out {
		out[i] = Card(t, side, i)
	}
	return out
}
