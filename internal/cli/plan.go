package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardsheets/pkg/config"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// planCommand creates the plan command, which prints the page grid for a
// geometry without touching any images.
func (c *CLI) planCommand() *cobra.Command {
	var geo geometryFlags
	var count int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show how many cards fit on a page and where the grid sits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := config.Default()
			job.Dir = "."
			if err := geo.apply(&job); err != nil {
				return err
			}
			job.Complete()
			if err := job.Validate(); err != nil {
				return err
			}
			printPlan(job, layout.NewPlan(job.LayoutConfig()), count)
			return nil
		},
	}

	geo.register(cmd, config.Default())
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of cards, to report the page count")

	return cmd
}

func printPlan(job config.Job, plan layout.Plan, count int) {
	printTitle("Sheet plan")
	printKeyValue("page", formatSize(job.PageSize)+" in")
	printKeyValue("card", formatSize(job.CardSize)+" in")
	printKeyValue("margin", fmt.Sprintf("%g in", job.Margin))
	printKeyValue("spacing", fmt.Sprintf("%g in", job.Spacing))
	printKeyValue("bleed", fmt.Sprintf("%g in", job.Bleed))
	printKeyValue("columns", fmt.Sprint(plan.Columns))
	printKeyValue("rows", fmt.Sprint(plan.Rows))
	printKeyValue("cards per page", fmt.Sprint(plan.CardsPerPage))
	printKeyValue("grid origin", fmt.Sprintf("%.2f, %.2f pt", plan.GridOrigin.X, plan.GridOrigin.Y))
	grid := plan.GridSize()
	printKeyValue("grid size", fmt.Sprintf("%.2f x %.2f pt", grid.Width, grid.Height))
	if count > 0 {
		printKeyValue("pages", fmt.Sprint(plan.PageCount(count)))
	}

	if plan.Empty() {
		printWarning("no card fits on this page")
	}
	printDetail("usable area = page - 2*margin + spacing (one extra gap is counted)")
}
