package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

// ticksCommand prints the key points of an axis.
func (c *CLI) ticksCommand() *cobra.Command {
	var (
		flags  axisFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the key points of an axis",
		Example: `  timeaxis ticks -k date -b 2021-01-01 -e 2021-03-31
  timeaxis ticks -k datetime -b 2021-01-01T09:00:00 -e 2021-01-01T17:00:00 --tz Europe/Berlin -n 8
  timeaxis ticks -k duration -b -500ms -e 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			l, cached, err := runner.LayoutWithCacheInfo(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := c.out
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}
			if len(l.Ticks) == 0 {
				printWarning(out, "no key points between %s and %s", l.Begin, l.End)
				return nil
			}
			fmt.Fprintln(out, tickTable(l))
			fmt.Fprintln(out, tickSummary(l, cached))
			return nil
		},
	}

	flags.bind(cmd, pipeline.KindDateTime)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	return cmd
}
