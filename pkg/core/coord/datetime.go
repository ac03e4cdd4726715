package coord

import (
	"math"
	"time"

	"github.com/matzehuels/timeaxis/pkg/core/period"
)

// DateTimeCoord is a coordinate over timestamps. Key points lie in
// [begin, end).
type DateTimeCoord struct {
	begin, end DateTime
}

var _ Ranged[DateTime] = DateTimeCoord{}

// NewDateTimeCoord returns a coordinate over [begin, end).
func NewDateTimeCoord(begin, end DateTime) DateTimeCoord {
	return DateTimeCoord{begin: begin, end: end}
}

func (c DateTimeCoord) Range() (DateTime, DateTime) { return c.begin, c.end }

func (c DateTimeCoord) Map(v DateTime, px PixelRange) int {
	return MapCoord(v, c.begin, c.end, px)
}

// KeyPoints picks a sub-day period when one fits the budget and steps by it
// from the first aligned time of day. Longer intervals fall back to the
// whole days between begin and end.
func (c DateTimeCoord) KeyPoints(maxPoints int) []DateTime {
	if maxPoints <= 0 || !c.begin.Before(c.end) {
		return nil
	}
	if ns, ok := c.end.Sub(c.begin).Nanoseconds(); ok {
		if p, ok := period.PerPoint(uint64(ns), maxPoints, true); ok && p <= math.MaxInt64 {
			return c.stepBy(time.Duration(p))
		}
	}

	days := dateKeyPoints(c.begin.DateCeil(), c.end.DateFloor(), maxPoints)
	points := make([]DateTime, 0, len(days))
	for _, d := range days {
		if t := c.begin.EarliestOn(d); t.Before(c.end) {
			points = append(points, t)
		}
	}
	return points
}

// Monthly returns a month-granular view of the same interval.
func (c DateTimeCoord) Monthly() MonthlyCoord[DateTime] { return NewMonthlyCoord(c.begin, c.end) }

// Yearly returns a year-granular view of the same interval.
func (c DateTimeCoord) Yearly() YearlyCoord[DateTime] { return NewYearlyCoord(c.begin, c.end) }

// stepBy emits begin's time of day rounded up to a multiple of p (or of a
// day for longer periods), then every p until end.
func (c DateTimeCoord) stepBy(p time.Duration) []DateTime {
	t := c.begin.t
	align := min(p, 24*time.Hour)
	tod := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	if r := tod % align; r != 0 {
		tod += align - r
	}

	y, m, d := t.Date()
	cur := time.Date(y, m, d, 0, 0, 0, int(tod), t.Location())
	// Wall clocks skip or repeat around DST changes.
	for cur.Before(t) {
		cur = cur.Add(p)
	}

	var points []DateTime
	for ; cur.Before(c.end.t); cur = cur.Add(p) {
		points = append(points, DateTime{t: cur})
	}
	return points
}
