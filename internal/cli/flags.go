package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardsheets/pkg/config"
	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// namedSizes are the page sizes accepted by name in --page-size.
var namedSizes = map[string]layout.Dimensions{
	"letter":  layout.Letter,
	"tabloid": layout.Tabloid,
	"archb":   layout.ArchB,
	"a4":      layout.A4,
}

// parseSize parses "WxH" in inches (e.g. "2.5x3.5") or a named page size.
func parseSize(s string) ([2]float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := namedSizes[s]; ok {
		return [2]float64{d.Width, d.Height}, nil
	}

	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return [2]float64{}, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (want WxH in inches, e.g. 2.5x3.5)", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return [2]float64{}, errors.New(errors.ErrCodeInvalidInput, "invalid width in size %q", s)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return [2]float64{}, errors.New(errors.ErrCodeInvalidInput, "invalid height in size %q", s)
	}
	return [2]float64{width, height}, nil
}

// formatSize formats an inch pair as "WxH".
func formatSize(d [2]float64) string {
	return strconv.FormatFloat(d[0], 'g', -1, 64) + "x" + strconv.FormatFloat(d[1], 'g', -1, 64)
}

// geometryFlags holds the sheet geometry flags shared by render and plan.
type geometryFlags struct {
	cardSize   string
	pageSize   string
	margin     float64
	spacing    float64
	bleed      float64
	markLength float64
}

// register adds the geometry flags to cmd with defaults taken from def.
func (g *geometryFlags) register(cmd *cobra.Command, def config.Job) {
	cmd.Flags().StringVar(&g.cardSize, "card-size", formatSize(def.CardSize), "card size in inches (WxH)")
	cmd.Flags().StringVar(&g.pageSize, "page-size", formatSize(def.PageSize), "page size in inches (WxH) or letter, tabloid, archb, a4")
	cmd.Flags().Float64Var(&g.margin, "margin", def.Margin, "page margin in inches")
	cmd.Flags().Float64Var(&g.spacing, "spacing", def.Spacing, "gap between cards in inches")
	cmd.Flags().Float64Var(&g.bleed, "bleed", def.Bleed, "bleed around each card in inches")
	cmd.Flags().Float64Var(&g.markLength, "mark-length", def.MarkLength, "crop mark length in inches")
}

// apply writes the parsed geometry into job.
func (g *geometryFlags) apply(job *config.Job) error {
	card, err := parseSize(g.cardSize)
	if err != nil {
		return err
	}
	page, err := parseSize(g.pageSize)
	if err != nil {
		return err
	}
	job.CardSize = card
	job.PageSize = page
	job.Margin = g.margin
	job.Spacing = g.spacing
	job.Bleed = g.bleed
	job.MarkLength = g.markLength
	return nil
}
