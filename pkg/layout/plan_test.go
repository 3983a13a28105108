package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func letterConfig() Config {
	return Config{
		CardSize:   Dimensions{Width: 2.5, Height: 3.5},
		PageSize:   Letter,
		Margin:     0.25,
		Spacing:    0.125,
		Bleed:      0.125,
		MarkLength: DefaultMarkLength,
	}
}

func TestNewPlanLetter(t *testing.T) {
	p := NewPlan(letterConfig())

	if p.Columns != 3 {
		t.Errorf("Columns = %d, want 3", p.Columns)
	}
	if p.Rows != 2 {
		t.Errorf("Rows = %d, want 2", p.Rows)
	}
	if p.CardsPerPage != 6 {
		t.Errorf("CardsPerPage = %d, want 6", p.CardsPerPage)
	}

	// 612pt page, 3*180 + 2*9 = 558pt grid
	if math.Abs(p.GridOrigin.X-27) > eps {
		t.Errorf("GridOrigin.X = %v, want 27", p.GridOrigin.X)
	}
	// 792pt page, 2*252 + 9 = 513pt grid
	if math.Abs(p.GridOrigin.Y-139.5) > eps {
		t.Errorf("GridOrigin.Y = %v, want 139.5", p.GridOrigin.Y)
	}
}

func TestNewPlanConvertsToPoints(t *testing.T) {
	p := NewPlan(letterConfig())

	if p.PageSize != (Dimensions{Width: 612, Height: 792}) {
		t.Errorf("PageSize = %+v, want 612x792", p.PageSize)
	}
	if p.CardSize != (Dimensions{Width: 180, Height: 252}) {
		t.Errorf("CardSize = %+v, want 180x252", p.CardSize)
	}
	if p.Spacing != 9 || p.Bleed != 9 {
		t.Errorf("Spacing, Bleed = %v, %v, want 9, 9", p.Spacing, p.Bleed)
	}
	if math.Abs(p.MarkLength-15) > eps {
		t.Errorf("MarkLength = %v, want 15", p.MarkLength)
	}
}

func TestNewPlanDefaults(t *testing.T) {
	p := NewPlan(DefaultConfig())

	// 12x18 in, 1 in margin, 0.5 in spacing:
	// (864-144+36)/216 = 3.5 -> 3, (1296-144+36)/288 = 4.125 -> 4
	if p.Columns != 3 || p.Rows != 4 || p.CardsPerPage != 12 {
		t.Errorf("plan = %dx%d (%d), want 3x4 (12)", p.Columns, p.Rows, p.CardsPerPage)
	}
	if math.Abs(p.GridOrigin.X-126) > eps || math.Abs(p.GridOrigin.Y-90) > eps {
		t.Errorf("GridOrigin = %+v, want (126, 90)", p.GridOrigin)
	}
}

func TestNewPlanSpacingCorrection(t *testing.T) {
	// Exactly two cards plus one gap fill the usable width. Without the
	// "+ spacing" term the second column would be lost.
	cfg := Config{
		CardSize: Dimensions{Width: 2, Height: 2},
		PageSize: Dimensions{Width: 6.5, Height: 4},
		Margin:   1,
		Spacing:  0.5,
	}
	p := NewPlan(cfg)
	if p.Columns != 2 {
		t.Errorf("Columns = %d, want 2", p.Columns)
	}
	if p.Rows != 1 {
		t.Errorf("Rows = %d, want 1", p.Rows)
	}
}

func TestNewPlanOversizedCard(t *testing.T) {
	tests := []struct {
		name     string
		card     Dimensions
		wantCols int
		wantRows int
	}{
		{"too wide", Dimensions{Width: 9, Height: 3.5}, 0, 2},
		{"too tall", Dimensions{Width: 2.5, Height: 12}, 3, 0},
		{"too big", Dimensions{Width: 20, Height: 20}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := letterConfig()
			cfg.CardSize = tt.card
			p := NewPlan(cfg)

			if p.Columns != tt.wantCols || p.Rows != tt.wantRows {
				t.Errorf("plan = %dx%d, want %dx%d", p.Columns, p.Rows, tt.wantCols, tt.wantRows)
			}
			if !p.Empty() {
				t.Error("Empty() = false, want true")
			}
			if p.CardsPerPage != 0 {
				t.Errorf("CardsPerPage = %d, want 0", p.CardsPerPage)
			}
		})
	}
}

func TestNewPlanMarginsEatPage(t *testing.T) {
	cfg := letterConfig()
	cfg.Margin = 6
	p := NewPlan(cfg)
	if !p.Empty() {
		t.Errorf("plan = %dx%d, want empty", p.Columns, p.Rows)
	}
}

func TestNewPlanFitsWhenCardInsideMargins(t *testing.T) {
	pages := []Dimensions{Letter, Tabloid, ArchB, A4}
	cards := []Dimensions{
		{Width: 2.5, Height: 3.5},
		{Width: 2.75, Height: 4.75},
		{Width: 1, Height: 1},
		{Width: 5, Height: 7},
	}
	margins := []float64{0, 0.25, 0.5}
	spacings := []float64{0, 0.125, 0.5}

	for _, page := range pages {
		for _, card := range cards {
			for _, m := range margins {
				for _, s := range spacings {
					if card.Width >= page.Width-2*m || card.Height >= page.Height-2*m {
						continue
					}
					p := NewPlan(Config{CardSize: card, PageSize: page, Margin: m, Spacing: s})
					if p.Columns < 1 || p.Rows < 1 {
						t.Errorf("card %+v on page %+v (margin %v, spacing %v): plan %dx%d, want >= 1x1",
							card, page, m, s, p.Columns, p.Rows)
					}
				}
			}
		}
	}
}

func TestGridIsCentered(t *testing.T) {
	configs := []Config{letterConfig(), DefaultConfig()}
	for _, sp := range []float64{0, 0.1, 0.3} {
		cfg := DefaultConfig()
		cfg.PageSize = A4
		cfg.Spacing = sp
		configs = append(configs, cfg)
	}

	for _, cfg := range configs {
		p := NewPlan(cfg)
		grid := p.GridSize()
		if got, want := p.GridOrigin.X+grid.Width/2, p.PageSize.Width/2; math.Abs(got-want) > 1e-6 {
			t.Errorf("%+v: horizontal center = %v, want %v", cfg, got, want)
		}
		if got, want := p.GridOrigin.Y+grid.Height/2, p.PageSize.Height/2; math.Abs(got-want) > 1e-6 {
			t.Errorf("%+v: vertical center = %v, want %v", cfg, got, want)
		}
	}
}

func TestNewPlanDeterministic(t *testing.T) {
	cfg := letterConfig()
	if NewPlan(cfg) != NewPlan(cfg) {
		t.Error("NewPlan should be deterministic")
	}
}

func TestPageCount(t *testing.T) {
	p := NewPlan(letterConfig())
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{8, 2},
		{12, 2},
		{13, 3},
	}
	for _, tt := range tests {
		if got := p.PageCount(tt.n); got != tt.want {
			t.Errorf("PageCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	empty := NewPlan(Config{CardSize: Dimensions{Width: 20, Height: 20}, PageSize: Letter})
	if got := empty.PageCount(8); got != 0 {
		t.Errorf("empty PageCount(8) = %d, want 0", got)
	}
}

func TestPitch(t *testing.T) {
	p := NewPlan(letterConfig())
	if got := p.Pitch(); got != (Dimensions{Width: 189, Height: 261}) {
		t.Errorf("Pitch() = %+v, want 189x261", got)
	}
}
