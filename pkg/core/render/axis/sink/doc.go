// Package sink renders an [axis.Layout] to output formats.
//
// [RenderSVG] draws the axis line, tick marks and labels. [RenderJSON]
// serializes the layout for API clients. [RenderText] draws a one-line
// terminal ruler. [Draw] rasterizes the axis onto any [Backend] that can
// set a pixel, which is the narrowest interface a drawing surface needs.
//
// All renderers use tick positions exactly as computed by the layout; they
// never look at the underlying time values.
package sink
