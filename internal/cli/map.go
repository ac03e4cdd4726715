package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

// mapCommand projects values onto the pixel range of an axis.
func (c *CLI) mapCommand() *cobra.Command {
	var flags axisFlags

	cmd := &cobra.Command{
		Use:   "map VALUE...",
		Short: "Project values onto the pixel range",
		Long: `Project values onto the pixel range of an axis.

Values are read like the axis bounds. Values outside the axis extrapolate
linearly, so they may land outside the pixel range.`,
		Example: `  timeaxis map -k date -b 2021-01-01 -e 2021-12-31 --pixels 0:365 2021-07-01`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}

			pos, err := runner.Map(opts, args)
			if err != nil {
				return err
			}
			out := c.out
			for i, v := range args {
				fmt.Fprintf(out, "%s %s %s\n", StyleValue.Render(v), StyleDim.Render(iconArrow), StyleNumber.Render(fmt.Sprint(pos[i])))
			}
			return nil
		},
	}

	flags.bind(cmd, pipeline.KindDateTime)
	return cmd
}
