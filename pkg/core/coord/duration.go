package coord

import (
	"math"
	"time"

	"github.com/matzehuels/timeaxis/pkg/core/period"
)

const oneDay = 24 * time.Hour

// DurationCoord is a coordinate over elapsed time with no calendar. Key
// points lie in [begin, end).
type DurationCoord struct {
	begin, end time.Duration
}

var _ Ranged[time.Duration] = DurationCoord{}

// NewDurationCoord returns a coordinate over [begin, end).
func NewDurationCoord(begin, end time.Duration) DurationCoord {
	return DurationCoord{begin: begin, end: end}
}

func (c DurationCoord) Range() (time.Duration, time.Duration) { return c.begin, c.end }

func (c DurationCoord) Map(v time.Duration, px PixelRange) int {
	return mapSpan(durationSpan(v, c.begin), durationSpan(c.end, c.begin), px)
}

// KeyPoints steps by the selected period starting at the first multiple of
// it at or after begin. Spans too long for nanoseconds step by a 1, 2, 5,
// 10, ... number of days instead.
func (c DurationCoord) KeyPoints(maxPoints int) []time.Duration {
	if maxPoints <= 0 || c.end <= c.begin {
		return nil
	}
	total := durationSpan(c.end, c.begin)
	if ns, ok := total.Nanoseconds(); ok {
		if p, ok := period.PerPoint(uint64(ns), maxPoints, false); ok && p <= math.MaxInt64 {
			step := time.Duration(p)
			return stepDurations(ceilMultiple(c.begin, step), c.end, step)
		}
	}

	days, ok := period.NiceStep(SpanOf(c.end).Days()-SpanOf(c.begin).Days(), maxPoints)
	if !ok {
		return nil
	}
	start := ceilMultiple(c.begin, oneDay)
	if days > math.MaxInt64/int64(oneDay) {
		// Only one tick fits in the representable range.
		return stepDurations(start, c.end, math.MaxInt64)
	}
	return stepDurations(start, c.end, time.Duration(days)*oneDay)
}

// ceilMultiple returns the smallest multiple of m at or after d, or d itself
// when no such multiple is representable.
func ceilMultiple(d, m time.Duration) time.Duration {
	r := d % m
	if r <= 0 {
		return d - r
	}
	if next := d + (m - r); next > d {
		return next
	}
	return d
}

// stepDurations returns start, start+step, ... below end, stopping before
// the sum overflows.
func stepDurations(start, end, step time.Duration) []time.Duration {
	var points []time.Duration
	for cur := start; cur < end; {
		points = append(points, cur)
		next := cur + step
		if next < cur {
			break
		}
		cur = next
	}
	return points
}
