package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardsheets/pkg/config"
)

// runCommand creates the run command for config-driven batches.
func (c *CLI) runCommand() *cobra.Command {
	var jobName string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Render every job in a run file",
		Long: `Render every [[job]] in a TOML run file (default: ` + config.DefaultFile + `).

Jobs inherit unset fields from the [defaults] table. Relative paths are
resolved against the run file's directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}

			f, err := config.Load(path)
			if err != nil {
				return err
			}

			var jobs []config.Job
			if jobName != "" {
				job, err := f.Job(jobName)
				if err != nil {
					return err
				}
				jobs = []config.Job{job}
			} else if jobs, err = f.Jobs(); err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			c.Logger.Debug("loaded run file", "path", path, "jobs", len(jobs))
			for _, job := range jobs {
				if err := c.runJob(cmd.Context(), runner, job); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jobName, "job", "", "run only the named job")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the rendered-sheet cache")

	return cmd
}
