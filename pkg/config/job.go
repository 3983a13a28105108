package config

import (
	"fmt"
	"path/filepath"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/compose"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// Job is one fully resolved run: a card directory plus the settings for its
// front and back sheets. Lengths are inches.
type Job struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir" validate:"required"`

	CardSize   [2]float64 `toml:"card_size_in" validate:"dive,gt=0"`
	PageSize   [2]float64 `toml:"page_size_in" validate:"dive,gt=0"`
	Margin     float64    `toml:"margin_in" validate:"gte=0"`
	Spacing    float64    `toml:"spacing_in" validate:"gte=0"`
	Bleed      float64    `toml:"bleed_in" validate:"gte=0"`
	MarkLength float64    `toml:"mark_length_in" validate:"gte=0"`

	FrontBackground string `toml:"front_bg_color" validate:"omitempty,color"`
	BackBackground  string `toml:"back_bg_color" validate:"omitempty,color"`
	FrontMarkColor  string `toml:"front_mark_color" validate:"omitempty,color"`
	BackMarkColor   string `toml:"back_mark_color" validate:"omitempty,color"`

	OutputFront string `toml:"output_front" validate:"outpath"`
	OutputBack  string `toml:"output_back" validate:"outpath,nefield=OutputFront"`
	JSON        bool   `toml:"json"`

	Crosshair   bool    `toml:"crosshair"`
	MirrorBacks bool    `toml:"mirror_backs"`
	MaxDPI      float64 `toml:"max_dpi" validate:"gte=0"`
	BackMarker  string  `toml:"back_marker" validate:"marker"`
}

// Default returns a job with the built-in settings: 2.5x3.5in cards on a
// 12x18in page with a 1in margin and 0.5in spacing, backs mirrored.
// Dir is left empty.
func Default() Job {
	d := layout.DefaultConfig()
	return Job{
		CardSize:    [2]float64{d.CardSize.Width, d.CardSize.Height},
		PageSize:    [2]float64{d.PageSize.Width, d.PageSize.Height},
		Margin:      d.Margin,
		Spacing:     d.Spacing,
		Bleed:       d.Bleed,
		MarkLength:  d.MarkLength,
		MirrorBacks: true,
		BackMarker:  card.DefaultBackMarker,
	}
}

// Complete fills the name and output paths when unset. The name defaults to
// the card directory's base name; outputs default to
// cards_fronts_<name>.pdf and cards_backs_<name>.pdf.
func (j *Job) Complete() {
	if j.Name == "" && j.Dir != "" {
		j.Name = filepath.Base(filepath.Clean(j.Dir))
	}
	if j.OutputFront == "" {
		j.OutputFront = outputName("fronts", j.Name)
	}
	if j.OutputBack == "" {
		j.OutputBack = outputName("backs", j.Name)
	}
}

func outputName(side, name string) string {
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fmt.Sprintf("cards_%s.pdf", side)
	}
	return fmt.Sprintf("cards_%s_%s.pdf", side, name)
}

// LayoutConfig returns the geometry for the planner.
func (j Job) LayoutConfig() layout.Config {
	return layout.Config{
		CardSize:   layout.Dimensions{Width: j.CardSize[0], Height: j.CardSize[1]},
		PageSize:   layout.Dimensions{Width: j.PageSize[0], Height: j.PageSize[1]},
		Margin:     j.Margin,
		Spacing:    j.Spacing,
		Bleed:      j.Bleed,
		MarkLength: j.MarkLength,
	}
}

// FrontOptions returns the compositor options for the front sheet.
// The job must have been validated.
func (j Job) FrontOptions() compose.Options {
	return compose.Options{
		Background: mustColor(j.FrontBackground),
		MarkColor:  mustColor(j.FrontMarkColor),
		Crosshair:  j.Crosshair,
	}
}

// BackOptions returns the compositor options for the back sheet.
// The job must have been validated.
func (j Job) BackOptions() compose.Options {
	return compose.Options{
		Mirror:     j.MirrorBacks,
		Background: mustColor(j.BackBackground),
		MarkColor:  mustColor(j.BackMarkColor),
		Crosshair:  j.Crosshair,
	}
}

// Output returns the destination for a side's sheet.
func (j Job) Output(side card.Side) string {
	if side == card.Back {
		return j.OutputBack
	}
	return j.OutputFront
}

func mustColor(s string) *layout.Color {
	if s == "" {
		return nil
	}
	c, err := layout.ParseColor(s)
	if err != nil {
		panic(fmt.Sprintf("config: unvalidated color %q: %v", s, err))
	}
	return &c
}
