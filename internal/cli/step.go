package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

// stepCommand moves a value along a discrete axis.
func (c *CLI) stepCommand() *cobra.Command {
	var (
		flags axisFlags
		n     int
	)

	cmd := &cobra.Command{
		Use:   "step VALUE",
		Short: "Move a value by whole days, months or years",
		Long: `Move a value n units along a discrete axis: days for date axes, months for
monthly axes and years for yearly axes. Negative n steps backward.

Monthly steps keep the day of month where possible and clamp it otherwise,
so 2021-01-31 steps to 2021-02-28.`,
		Example: `  timeaxis step -k monthly -b 2021-01-01 -e 2022-01-01 2021-01-31
  timeaxis step -k yearly -b 2000-01-01 -e 2020-01-01 --count -3 2010-01-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			if opts.Begin == "" && opts.End == "" {
				// The bounds do not affect stepping.
				opts.Begin, opts.End = args[0], args[0]
			}
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}

			v, err := runner.Step(opts, args[0], n)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, v)
			return nil
		},
	}

	flags.bind(cmd, pipeline.KindDate)
	cmd.Flags().IntVar(&n, "count", 1, "number of units to step; negative steps backward")
	return cmd
}
