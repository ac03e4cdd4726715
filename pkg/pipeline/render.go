package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"image/color"

	"github.com/matzehuels/timeaxis/pkg/core/render"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis/sink"
	"github.com/matzehuels/timeaxis/pkg/errors"
)

// pngScale is the resolution multiplier for PNGs converted from SVG.
const pngScale = 2.0

// RenderLayout encodes l in every requested format.
func RenderLayout(ctx context.Context, l axis.Layout, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(l, svgOpts...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error
		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithIndent())
		case FormatSVG:
			data = svgOnce()
		case FormatText:
			data = []byte(sink.RenderText(l, opts.Columns) + "\n")
		case FormatPNG:
			data, err = renderPNG(ctx, l, svgOnce, opts)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svgOnce())
		default:
			err = errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderPNG converts the SVG when rsvg-convert is installed and rasterizes
// the bare axis otherwise.
func renderPNG(ctx context.Context, l axis.Layout, svg func() []byte, opts Options) ([]byte, error) {
	data, err := render.ToPNG(ctx, svg(), pngScale)
	if !stderrors.Is(err, render.ErrConverterMissing) {
		return data, err
	}
	opts.Logger.Debug("rsvg-convert not found, rendering png without labels")
	c, err := strokeColor(opts)
	if err != nil {
		return nil, err
	}
	return sink.RenderPNG(l, tickLength(opts), c)
}

func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	c, err := strokeColor(opts)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithColor(c)}
	if opts.Height > 0 {
		svgOpts = append(svgOpts, sink.WithHeight(opts.Height))
	}
	return svgOpts, nil
}

func strokeColor(opts Options) (c color.RGBA, err error) {
	if opts.Color == "" {
		return sink.DefaultColor, nil
	}
	c, err = sink.ParseColor(opts.Color)
	if err != nil {
		return c, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", opts.Color)
	}
	return c, nil
}

// tickLength scales tick marks with the requested height.
func tickLength(opts Options) int {
	if opts.Height > 0 {
		return max(opts.Height/6, 2)
	}
	return 6
}
