// Package gonumplot adapts the coordinate key points to gonum/plot axes.
//
//	p := plot.New()
//	p.X.Tick.Marker = gonumplot.TimeTicker{MaxPoints: 8}
//
// TimeTicker reads axis values as Unix seconds, DurationTicker as
// nanoseconds of elapsed time.
package gonumplot

import (
	"math"
	"time"

	"gonum.org/v1/plot"

	"github.com/matzehuels/timeaxis/pkg/core/coord"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
)

const defaultMaxPoints = 10

var (
	_ plot.Ticker = TimeTicker{}
	_ plot.Ticker = DurationTicker{}
)

// TimeTicker places ticks on calendar-aligned instants.
type TimeTicker struct {
	MaxPoints int
	// Location is the zone ticks are aligned in. Nil means UTC.
	Location *time.Location
	// Format is a strftime pattern. Empty picks one from the tick spacing.
	Format string
}

func (t TimeTicker) Ticks(lo, hi float64) []plot.Tick {
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	c := coord.NewDateTimeCoord(
		coord.NewDateTime(unixTime(lo).In(loc)),
		coord.NewDateTime(unixTime(hi).In(loc)),
	)
	points := c.KeyPoints(maxPoints(t.MaxPoints))
	labels := axis.TimeLabels[coord.DateTime](t.Format)(points)

	ticks := make([]plot.Tick, len(points))
	for i, p := range points {
		ticks[i] = plot.Tick{Value: unixSeconds(p.Time()), Label: labels[i]}
	}
	return ticks
}

// DurationTicker places ticks on round elapsed times.
type DurationTicker struct {
	MaxPoints int
}

func (t DurationTicker) Ticks(lo, hi float64) []plot.Tick {
	c := coord.NewDurationCoord(clampDuration(lo), clampDuration(hi))
	points := c.KeyPoints(maxPoints(t.MaxPoints))
	labels := axis.DurationLabels()(points)

	ticks := make([]plot.Tick, len(points))
	for i, p := range points {
		ticks[i] = plot.Tick{Value: float64(p), Label: labels[i]}
	}
	return ticks
}

func maxPoints(n int) int {
	if n <= 0 {
		return defaultMaxPoints
	}
	return n
}

func unixTime(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9)))
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func clampDuration(v float64) time.Duration {
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return time.Duration(v)
}
