package sink

import (
	"bytes"
	"fmt"
	"html"
	"image/color"

	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
)

const (
	defaultHeight     = 40
	defaultTickLength = 6
	defaultFontSize   = 11
	svgMargin         = 40
)

// DefaultColor is the stroke colour used when none is given.
var DefaultColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	color      color.RGBA
	height     int
	tickLength int
	fontSize   int
	labels     bool
}

func WithColor(c color.RGBA) SVGOption { return func(r *svgRenderer) { r.color = c } }
func WithHeight(h int) SVGOption       { return func(r *svgRenderer) { r.height = h } }
func WithTickLength(n int) SVGOption   { return func(r *svgRenderer) { r.tickLength = n } }
func WithFontSize(size int) SVGOption  { return func(r *svgRenderer) { r.fontSize = size } }
func WithoutLabels() SVGOption         { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG draws a horizontal axis. Pixel positions map one to one onto
// SVG user units, shifted right by a margin so edge labels are not clipped.
func RenderSVG(l axis.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{
		color:      DefaultColor,
		height:     defaultHeight,
		tickLength: defaultTickLength,
		fontSize:   defaultFontSize,
		labels:     true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	lo, hi := min(l.Lo, l.Hi), max(l.Lo, l.Hi)
	width := hi - lo + 2*svgMargin
	x := func(pos int) int { return pos - lo + svgMargin }
	y := r.tickLength

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, r.height, width, r.height)
	fmt.Fprintf(&buf, `  <g stroke="%s" stroke-width="1">`+"\n", hexColor(r.color))
	fmt.Fprintf(&buf, `    <line class="axis" x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x(lo), y, x(hi), y)
	for _, t := range l.Ticks {
		fmt.Fprintf(&buf, `    <line class="tick" x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x(t.Pos), y, x(t.Pos), y+r.tickLength)
	}
	buf.WriteString("  </g>\n")

	if r.labels {
		fmt.Fprintf(&buf, `  <g fill="%s" font-family="sans-serif" font-size="%d" text-anchor="middle">`+"\n",
			hexColor(r.color), r.fontSize)
		for _, t := range l.Ticks {
			fmt.Fprintf(&buf, `    <text x="%d" y="%d"><title>%s</title>%s</text>`+"\n",
				x(t.Pos), y+r.tickLength+r.fontSize+2, html.EscapeString(t.Value), html.EscapeString(t.Label))
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// hexColor formats c as #rrggbb, or #rrggbbaa when it is translucent.
func hexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R, c.G, c.B = c.R*17, c.G*17, c.B*17
	case 7:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("invalid length")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
