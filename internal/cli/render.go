package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/config"
	"github.com/matzehuels/cardsheets/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command that are
// not geometry.
type renderOpts struct {
	name       string
	frontBg    string
	backBg     string
	frontMarks string
	backMarks  string
	frontOut   string
	backOut    string
	crosshair  bool
	noMirror   bool
	maxDPI     float64
	marker     string
	json       bool
	noCache    bool
}

// renderCommand creates the render command for one card directory.
//
// Defaults are 2.5x3.5in cards on a 12x18in page with a 1in margin and
// 0.5in spacing, no bleed, backs mirrored.
func (c *CLI) renderCommand() *cobra.Command {
	def := config.Default()
	var geo geometryFlags
	opts := renderOpts{marker: def.BackMarker}

	cmd := &cobra.Command{
		Use:   "render DIR",
		Short: "Lay out a directory of card images into front and back PDFs",
		Long: `Lay out a directory of card images into front and back PDF sheets.

Images ending in the back marker (default "+", e.g. dragon+.png) are backs;
other PNG and JPEG files are fronts. Fronts and backs pair up in filename
order. Backs are mirrored within each row so they register when printed
duplex (flip on the long edge).`,
		Example: `  cardsheets render sts-cards/watcher --back-bg "#6c0dbe" --front-marks "#fff" --back-marks "#fff"
  cardsheets render cards --page-size letter --margin 0.25 --spacing 0.125 --bleed 0.125`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := def
			job.Dir = args[0]
			if err := geo.apply(&job); err != nil {
				return err
			}
			opts.apply(&job)
			job.Complete()

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			return c.runJob(cmd.Context(), runner, job)
		},
	}

	geo.register(cmd, def)
	cmd.Flags().StringVar(&opts.name, "name", "", "job name used in default output names (default: directory name)")
	cmd.Flags().StringVar(&opts.frontBg, "front-bg", "", "front page background color (#rrggbb, #rgb or r,g,b)")
	cmd.Flags().StringVar(&opts.backBg, "back-bg", "", "back page background color")
	cmd.Flags().StringVar(&opts.frontMarks, "front-marks", "", "front crop mark color (default black)")
	cmd.Flags().StringVar(&opts.backMarks, "back-marks", "", "back crop mark color (default black)")
	cmd.Flags().StringVar(&opts.frontOut, "front-out", "", "front sheet output (default cards_fronts_<name>.pdf)")
	cmd.Flags().StringVar(&opts.backOut, "back-out", "", "back sheet output (default cards_backs_<name>.pdf)")
	cmd.Flags().BoolVar(&opts.crosshair, "crosshair", false, "add registration crosshairs in the top and bottom margins")
	cmd.Flags().BoolVar(&opts.noMirror, "no-mirror", false, "do not mirror the back sheet")
	cmd.Flags().Float64Var(&opts.maxDPI, "max-dpi", 0, "downsample card images above this density (0 keeps originals)")
	cmd.Flags().StringVar(&opts.marker, "marker", opts.marker, "filename suffix marking back images")
	cmd.Flags().BoolVar(&opts.json, "json", false, "also write the layout as JSON next to each PDF")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered-sheet cache")

	return cmd
}

func (o renderOpts) apply(job *config.Job) {
	job.Name = o.name
	job.FrontBackground = o.frontBg
	job.BackBackground = o.backBg
	job.FrontMarkColor = o.frontMarks
	job.BackMarkColor = o.backMarks
	job.OutputFront = o.frontOut
	job.OutputBack = o.backOut
	job.Crosshair = o.crosshair
	job.MirrorBacks = !o.noMirror
	job.MaxDPI = o.maxDPI
	job.BackMarker = o.marker
	job.JSON = o.json
}

// runJob executes one job, writes its sheets and prints a summary.
func (c *CLI) runJob(ctx context.Context, runner *pipeline.Runner, job config.Job) error {
	prog := newJobProgress(c.Logger, job.Name)

	result, err := runner.Execute(ctx, job)
	if err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	paths, err := runner.Write(result)
	if err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	prog.step("rendered", "files", len(paths))

	printSuccess("%s: %d per page (%dx%d)", job.Name, result.Plan.CardsPerPage, result.Plan.Columns, result.Plan.Rows)
	if result.Fronts != nil {
		printDetail("%ss", card.Front)
		printStats(result.Stats.FrontCount, result.Stats.FrontPages, result.CacheInfo.FrontHit)
	}
	if result.Backs != nil {
		printDetail("%ss", card.Back)
		printStats(result.Stats.BackCount, result.Stats.BackPages, result.CacheInfo.BackHit)
	}
	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
