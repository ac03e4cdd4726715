// Package pkg holds the libraries behind timeaxis, a tick engine for time
// axes.
//
// # Overview
//
// Given an interval of dates, timestamps or elapsed durations, timeaxis
// answers two questions a plotting backend asks of every axis: where does a
// value land on a pixel range, and which values deserve a tick. Ticks fall on
// human boundaries (whole hours, days, weeks, month starts, round years) and
// never exceed a caller-supplied budget by more than one.
//
// # Architecture
//
//	bounds (strings)
//	      ↓
//	 [pipeline]        parse for the axis kind, apply defaults
//	      ↓
//	 [core/coord]      key points and pixel mapping
//	      ↓              ↖ [core/period] picks round step sizes
//	 [render/axis]     ticks with positions and labels
//	      ↓
//	 [render/axis/sink] JSON, SVG, text, PNG (PDF via [render])
//
// # Quick Start
//
//	begin := coord.NewDateTime(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
//	end := begin.Add(24 * time.Hour)
//	c := coord.NewDateTimeCoord(begin, end)
//
//	for _, p := range c.KeyPoints(5) {
//	    fmt.Println(p, c.Map(p, coord.PixelRange{Lo: 0, Hi: 800}))
//	}
//
// # Main Packages
//
// [core/coord] - coordinates for dates, timestamps and durations, plus the
// monthly and yearly views of any calendar coordinate.
//
// [core/period] - step selection: the per-point period of nanosecond axes
// and {1, 2, 5}×10ⁿ steps for counts of days and years.
//
// [render/axis] - projects key points to a [axis.Layout] with labels.
//
// [render/gonumplot] - plot.Ticker adapters for gonum/plot.
//
// [pipeline] - string options to layouts and artifacts, with caching. Used by
// the CLI, the HTTP server and config batches.
//
// [cache] - file, Redis and null caches for layouts and artifacts.
//
// [server] - HTTP API.
//
// [errors] - error codes shared by every outer surface.
//
// [observability] - hooks for metrics and tracing.
//
// [core/coord]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/coord
// [core/period]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/period
// [render]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/render
// [render/axis]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/render/axis
// [render/axis/sink]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/render/axis/sink
// [render/gonumplot]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/render/gonumplot
// [axis.Layout]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/core/render/axis#Layout
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/timeaxis/pkg/observability
package pkg
