// Package pipeline turns axis options into tick layouts and rendered
// artifacts.
//
// It is the single entry point shared by the CLI, the HTTP API and config
// file batches, so all of them parse bounds, apply defaults and cache results
// the same way.
//
// # Stages
//
//  1. Model: parse the bounds for the axis kind and build the coordinate
//  2. Layout: compute key points, pixel positions and labels
//  3. Render: encode the layout as JSON, SVG, text, PNG or PDF
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Kind:    "datetime",
//	    Begin:   "2021-01-01T00:00:00",
//	    End:     "2021-01-02T00:00:00",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/timeaxis/pkg/cache"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis/sink"
	"github.com/matzehuels/timeaxis/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Config Files
// =============================================================================

const (
	// DefaultMaxPoints is the key point budget.
	DefaultMaxPoints = 10

	// DefaultPixelLo and DefaultPixelHi bound the default pixel range.
	DefaultPixelLo = 0
	DefaultPixelHi = 800

	// DefaultTimezone is the zone calendar bounds are read in.
	DefaultTimezone = "UTC"

	// DefaultColumns is the width of the text ruler.
	DefaultColumns = 80
)

// Axis kinds.
const (
	KindDate     = "date"
	KindDateTime = "datetime"
	KindDuration = "duration"
	KindMonthly  = "monthly"
	KindYearly   = "yearly"
)

// Kinds lists the supported axis kinds.
var Kinds = []string{KindDate, KindDateTime, KindDuration, KindMonthly, KindYearly}

// Output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatText = "text"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// Formats lists the supported output formats.
var Formats = []string{FormatJSON, FormatSVG, FormatText, FormatPNG, FormatPDF}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options describes one axis. It is decoded from API request bodies and
// from [[axis]] tables in config files.
type Options struct {
	Kind     string `json:"kind" toml:"kind"`
	Begin    string `json:"begin" toml:"begin"`
	End      string `json:"end" toml:"end"`
	Timezone string `json:"timezone,omitempty" toml:"timezone"`

	// Layout options
	MaxPoints   int    `json:"max_points,omitempty" toml:"max_points"`
	Pixels      [2]int `json:"pixels,omitempty" toml:"pixels"`
	LabelFormat string `json:"label_format,omitempty" toml:"label_format"` // strftime pattern

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats"`
	Color   string   `json:"color,omitempty" toml:"color"`
	Height  int      `json:"height,omitempty" toml:"height"`
	Columns int      `json:"columns,omitempty" toml:"columns"`

	// Name is used for output files in config batches.
	Name    string `json:"name,omitempty" toml:"name"`
	Refresh bool   `json:"refresh,omitempty" toml:"refresh"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	loc       *time.Location
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Layout    axis.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TickCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, Formats...); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateKind(o.Kind, Kinds...); err != nil {
		return err
	}
	if o.Begin == "" || o.End == "" {
		return errors.New(errors.ErrCodeInvalidRange, "begin and end are required")
	}

	if o.Timezone == "" {
		o.Timezone = DefaultTimezone
	}
	loc, err := errors.ValidateTimezone(o.Timezone)
	if err != nil {
		return err
	}
	o.loc = loc

	if o.MaxPoints == 0 {
		o.MaxPoints = DefaultMaxPoints
	}
	if err := errors.ValidateMaxPoints(o.MaxPoints); err != nil {
		return err
	}
	if o.Pixels == [2]int{} {
		o.Pixels = [2]int{DefaultPixelLo, DefaultPixelHi}
	}
	if err := errors.ValidatePixels(o.Pixels[0], o.Pixels[1]); err != nil {
		return err
	}
	if o.LabelFormat != "" {
		if err := axis.ValidatePattern(o.LabelFormat); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid label format %q", o.LabelFormat)
		}
	}

	if o.Color != "" {
		if _, err := sink.ParseColor(o.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", o.Color)
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateHeight(o.Height); err != nil {
		return err
	}
	if err := errors.ValidateColumns(o.Columns); err != nil {
		return err
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Location returns the zone bounds are read in. It is UTC until
// ValidateAndSetDefaults has run.
func (o *Options) Location() *time.Location {
	if o.loc == nil {
		return time.UTC
	}
	return o.loc
}

// LayoutKeyOpts returns cache key options for the tick layout.
func (o *Options) LayoutKeyOpts(begin, end string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Kind:        o.Kind,
		Begin:       begin,
		End:         end,
		Timezone:    o.Timezone,
		MaxPoints:   o.MaxPoints,
		PixelLo:     o.Pixels[0],
		PixelHi:     o.Pixels[1],
		LabelFormat: o.LabelFormat,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		k.Color = o.Color
		k.Height = o.Height
	case FormatText:
		k.Columns = o.Columns
	}
	return k
}
