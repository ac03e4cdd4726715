package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

// renderOpts holds the render flags that are not axis flags.
type renderOpts struct {
	output  string // output file, base path for several formats, or "-" for stdout
	config  string // TOML batch file
	dir     string // output directory for batches
	formats string
	color   string
	height  int
	columns int
}

// renderCommand writes rendered axes to files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags axisFlags
		opts  renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an axis to JSON, SVG, text, PNG or PDF",
		Long: `Render an axis described by flags, or every [[axis]] table of a TOML
config file with --config.

PDF output, and PNG output with labels, need rsvg-convert (librsvg). Without
it PNG files contain the bare axis.`,
		Example: `  timeaxis render -k date -b 2021-01-01 -e 2021-12-31 -f svg,png -o year
  timeaxis render -k duration -b 0 -e 90s -f text -o -
  timeaxis render --config examples/axes.toml --dir out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if opts.config != "" {
				return c.renderBatch(cmd.Context(), runner, opts)
			}

			axisOpts, err := flags.options()
			if err != nil {
				return err
			}
			opts.apply(&axisOpts)
			return c.renderOne(cmd.Context(), runner, axisOpts, opts.output)
		},
	}

	flags.bind(cmd, pipeline.KindDateTime)
	fl := cmd.Flags()
	fl.StringVarP(&opts.output, "output", "o", "axis", "output path; the extension is added per format, - writes to stdout")
	fl.StringVar(&opts.config, "config", "", "render every axis of a TOML config file")
	fl.StringVar(&opts.dir, "dir", ".", "output directory for --config")
	fl.StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "comma-separated formats: "+strings.Join(pipeline.Formats, ", "))
	fl.StringVar(&opts.color, "color", "", "stroke colour as #rgb, #rrggbb or #rrggbbaa")
	fl.IntVar(&opts.height, "height", 0, "SVG height in pixels")
	fl.IntVar(&opts.columns, "columns", pipeline.DefaultColumns, "width of text output")
	_ = cmd.MarkFlagFilename("config", "toml")
	return cmd
}

// apply copies the presentation flags onto o.
func (r renderOpts) apply(o *pipeline.Options) {
	o.Formats = parseFormats(r.formats)
	o.Color = r.color
	o.Height = r.height
	o.Columns = r.columns
}

func (c *CLI) renderOne(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, output string) error {
	spin := newSpinnerWithContext(ctx, os.Stderr, "Rendering "+opts.Kind+" axis...")
	if needsConverter(opts.Formats) {
		spin.Start()
	}
	res, err := runner.Execute(ctx, opts)
	spin.Stop()
	if err != nil {
		return err
	}

	if output == "-" {
		if len(res.Artifacts) != 1 {
			return fmt.Errorf("stdout output takes exactly one format, got %d", len(res.Artifacts))
		}
		for _, data := range res.Artifacts {
			_, err := c.out.Write(data)
			return err
		}
	}

	paths, err := writeArtifacts(output, res.Artifacts, opts.Formats)
	if err != nil {
		return err
	}
	printSuccess(c.out, "Rendered %s axis", opts.Kind)
	fmt.Fprintln(c.out, tickSummary(res.Layout, res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit))
	for _, p := range paths {
		printFile(c.out, p)
	}
	return nil
}

func (c *CLI) renderBatch(ctx context.Context, runner *pipeline.Runner, opts renderOpts) error {
	axes, err := pipeline.LoadConfig(opts.config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	prog := newProgress(c.Logger)
	printInfo(c.out, "Rendering %d axes from %s", len(axes), opts.config)
	for _, a := range axes {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := runner.Execute(ctx, a)
		if err != nil {
			return fmt.Errorf("axis %q: %w", a.Name, err)
		}
		paths, err := writeArtifacts(filepath.Join(opts.dir, a.Name), res.Artifacts, a.Formats)
		if err != nil {
			return err
		}
		printDetail(c.out, "%s: %d ticks", a.Name, len(res.Layout.Ticks))
		for _, p := range paths {
			printFile(c.out, p)
		}
	}
	prog.done("rendered config", "axes", len(axes))
	return nil
}

// writeArtifacts writes one file per format. With a single format an
// output path that already has that extension is used as is.
func writeArtifacts(base string, artifacts map[string][]byte, formats []string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		path := artifactPath(base, format, len(formats) == 1)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func artifactPath(base, format string, single bool) string {
	ext := "." + format
	if format == pipeline.FormatText {
		ext = ".txt"
	}
	if single && strings.EqualFold(filepath.Ext(base), ext) {
		return base
	}
	return base + ext
}

func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPDF || f == pipeline.FormatPNG {
			return true
		}
	}
	return false
}
