// Package period chooses the spacing between neighbouring axis key points.
//
// Two searches are provided. [PerPoint] walks a calendar-aware table of
// regimes (sub-second, seconds, hours, days, tens of days) and returns a
// spacing in nanoseconds. [NiceStep] returns the smallest member of the
// 1, 2, 5, 10, 20, 50, ... sequence that keeps a count within budget; it is
// used for year and whole-day steps.
package period

import "math/bits"

// Spacing units in nanoseconds.
const (
	Nanosecond uint64 = 1
	Second            = 1_000_000_000 * Nanosecond
	Hour              = 3600 * Second
	Day               = 24 * Hour
)

// regime is one row of the period table: candidates are mults[i]*unit*base^k.
type regime struct {
	unit  uint64
	mults []uint64
	base  uint64
}

var (
	subSecondRegime = regime{unit: Nanosecond, mults: []uint64{1, 2, 5}, base: 10}
	secondsRegime   = regime{unit: Second, mults: []uint64{1, 2, 5, 10, 15, 20, 30}, base: 60}
	hoursRegime     = regime{unit: Hour, mults: []uint64{1, 2, 4, 8, 12}, base: 24}
	daysRegime      = regime{unit: Day, mults: []uint64{1, 2, 5, 7}, base: 10}
	tenDaysRegime   = regime{unit: 10 * Day, mults: []uint64{1, 2, 5}, base: 10}
)

// PerPoint returns the spacing, in nanoseconds, between key points so that a
// span of totalNs holds at most about maxPoints of them.
//
// The search is seeded with the largest power of ten not above
// totalNs/maxPoints. The seed picks a regime, and the regime's multipliers
// are walked (scaling by its base after each full pass) until
// totalNs/candidate <= maxPoints*multiplier.
//
// When subDaily is set and the seed reaches a whole day, PerPoint reports
// false so that the caller can switch to calendar-day stepping. A zero span
// or a non-positive budget also reports false.
func PerPoint(totalNs uint64, maxPoints int, subDaily bool) (uint64, bool) {
	if maxPoints <= 0 || totalNs == 0 {
		return 0, false
	}
	budget := uint64(maxPoints)
	seed := floorPow10(totalNs / budget)

	var r regime
	candidate := seed
	switch {
	case seed < Second:
		r = subSecondRegime
	case seed < Hour:
		r, candidate = secondsRegime, Second
	case seed < Day:
		r, candidate = hoursRegime, Hour
	case subDaily:
		return 0, false
	case seed < 10*Day:
		r, candidate = daysRegime, Day
	default:
		r, candidate = tenDaysRegime, 10*Day
	}
	return r.walk(totalNs, candidate, budget), true
}

func (r regime) walk(total, candidate, budget uint64) uint64 {
	i := 0
	for exceeds(total/candidate, budget, r.mults[i]) {
		i++
		if i == len(r.mults) {
			i = 0
			next := candidate * r.base
			if next/r.base != candidate {
				// The candidate already exceeds any representable span.
				break
			}
			candidate = next
		}
	}
	return r.mults[i] * candidate
}

// exceeds reports whether n > budget*mult without overflowing.
func exceeds(n, budget, mult uint64) bool {
	hi, lo := bits.Mul64(budget, mult)
	return hi == 0 && n > lo
}

// floorPow10 returns the largest power of ten <= x, or 1 when x is zero.
func floorPow10(x uint64) uint64 {
	p := uint64(1)
	for x >= 10 {
		x /= 10
		p *= 10
	}
	return p
}
