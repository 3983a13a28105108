package layout

// Default geometry, matching the sheets produced for the tabloid-extra
// (12x18 in) press sheets the tool was first used with.
const (
	DefaultMargin  = 1.0
	DefaultSpacing = 0.5
	DefaultBleed   = 0.0

	// DefaultMarkLength is 15pt, expressed in inches.
	DefaultMarkLength = 15.0 / PointsPerInch
)

// DefaultCardSize is a standard poker card (2.5x3.5 in).
var DefaultCardSize = Dimensions{Width: 2.5, Height: 3.5}

// Config holds the run geometry. All lengths are in inches.
//
// A Config is a plain value; [NewPlan] never fails on it. Negative lengths
// are rejected earlier by configuration validation.
type Config struct {
	CardSize   Dimensions `json:"card_size"`
	PageSize   Dimensions `json:"page_size"`
	Margin     float64    `json:"margin"`
	Spacing    float64    `json:"spacing"`
	Bleed      float64    `json:"bleed"`
	MarkLength float64    `json:"mark_length"`
}

// DefaultConfig returns the default geometry.
func DefaultConfig() Config {
	return Config{
		CardSize:   DefaultCardSize,
		PageSize:   ArchB,
		Margin:     DefaultMargin,
		Spacing:    DefaultSpacing,
		Bleed:      DefaultBleed,
		MarkLength: DefaultMarkLength,
	}
}
