package sink

import (
	"encoding/json"

	"github.com/matzehuels/cardsheets/pkg/compose"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	name string
}

// WithJSONName labels the exported sheet (e.g. "fronts").
func WithJSONName(s string) JSONOption { return func(r *jsonRenderer) { r.name = s } }

type jsonOutput struct {
	Name      string      `json:"name,omitempty"`
	Plan      layout.Plan `json:"plan"`
	Mirror    bool        `json:"mirror"`
	Crosshair bool        `json:"crosshair,omitempty"`
	Cards     int         `json:"cards"`
	Pages     []jsonPage  `json:"pages"`
}

type jsonPage struct {
	Number     int              `json:"number"`
	Background string           `json:"background,omitempty"`
	MarkColor  string           `json:"mark_color"`
	Cards      []jsonCard       `json:"cards"`
	Marks      []layout.Segment `json:"marks,omitempty"`
}

type jsonCard struct {
	Slot      int              `json:"slot"`
	Column    int              `json:"column"`
	Row       int              `json:"row"`
	Source    string           `json:"source"`
	Side      string           `json:"side"`
	Format    string           `json:"format"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	CropMarks []layout.Segment `json:"crop_marks"`
}

// RenderJSON exports the sheet's plan and placements as pretty-printed JSON.
// Image bytes are not included; cards are identified by source.
func RenderJSON(sheet *compose.Sheet, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	o := sheet.Options()
	out := jsonOutput{
		Name:      r.name,
		Plan:      sheet.Plan(),
		Mirror:    o.Mirror,
		Crosshair: o.Crosshair,
		Cards:     sheet.CardCount(),
		Pages:     make([]jsonPage, 0, sheet.Len()),
	}

	for page := range sheet.Pages() {
		jp := jsonPage{
			Number:    page.Number,
			MarkColor: page.MarkColor.Hex(),
			Cards:     make([]jsonCard, len(page.Cards)),
			Marks:     page.Marks,
		}
		if page.Background != nil {
			jp.Background = page.Background.Hex()
		}
		for i, pc := range page.Cards {
			jp.Cards[i] = jsonCard{
				Slot:      pc.Slot,
				Column:    pc.Column,
				Row:       pc.Row,
				Source:    pc.Card.Source,
				Side:      pc.Card.Side.String(),
				Format:    string(pc.Card.Format),
				X:         pc.Position.X,
				Y:         pc.Position.Y,
				Width:     pc.Size.Width,
				Height:    pc.Size.Height,
				CropMarks: pc.CropMarks[:],
			}
		}
		out.Pages = append(out.Pages, jp)
	}

	return json.MarshalIndent(out, "", "  ")
}
