package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

// axisFlags are the flags that describe an axis.
type axisFlags struct {
	kind        string
	begin       string
	end         string
	timezone    string
	maxPoints   int
	pixels      string // "lo:hi"
	labelFormat string
	noCache     bool
}

// bind registers the flags on cmd.
func (f *axisFlags) bind(cmd *cobra.Command, defaultKind string) {
	fl := cmd.Flags()
	fl.StringVarP(&f.kind, "kind", "k", defaultKind, "axis kind: "+strings.Join(pipeline.Kinds, ", "))
	fl.StringVarP(&f.begin, "begin", "b", "", "start of the axis")
	fl.StringVarP(&f.end, "end", "e", "", "end of the axis")
	fl.StringVar(&f.timezone, "tz", pipeline.DefaultTimezone, "IANA timezone calendar bounds are read in")
	fl.IntVarP(&f.maxPoints, "max-points", "n", pipeline.DefaultMaxPoints, "key point budget")
	fl.StringVar(&f.pixels, "pixels", fmt.Sprintf("%d:%d", pipeline.DefaultPixelLo, pipeline.DefaultPixelHi), "pixel range as lo:hi")
	fl.StringVar(&f.labelFormat, "label-format", "", "strftime pattern for labels (default: chosen from tick spacing)")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")

	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Kinds, cobra.ShellCompDirectiveNoFileComp
	})
}

// options converts the flags to pipeline options.
func (f *axisFlags) options() (pipeline.Options, error) {
	px, err := parsePixels(f.pixels)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Kind:        f.kind,
		Begin:       f.begin,
		End:         f.end,
		Timezone:    f.timezone,
		MaxPoints:   f.maxPoints,
		Pixels:      px,
		LabelFormat: f.labelFormat,
	}, nil
}

// parsePixels reads "lo:hi". Negative and reversed ranges are allowed.
func parsePixels(s string) ([2]int, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return [2]int{}, fmt.Errorf("invalid pixel range %q (want lo:hi)", s)
	}
	l, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid pixel range %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid pixel range %q: %w", s, err)
	}
	return [2]int{l, h}, nil
}
