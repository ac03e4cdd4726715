package coord

import "math"

const roundingEpsilon = 1e-10

// MapCoord projects value onto px, where begin maps to px.Lo and end maps
// to px.Hi. Values outside the interval extrapolate past the pixel range. A
// zero-length interval maps everything to px.Lo.
func MapCoord[T Instant[T]](value, begin, end T, px PixelRange) int {
	return mapSpan(value.Sub(begin), end.Sub(begin), px)
}

func mapSpan(offset, total Span, px PixelRange) int {
	width := float64(px.Hi - px.Lo)
	totalNs, ok := total.Nanoseconds()
	if !ok {
		return project(px.Lo, width, float64(offset.Days()), float64(total.Days()))
	}
	if offsetNs, ok := offset.Nanoseconds(); ok {
		return project(px.Lo, width, float64(offsetNs), float64(totalNs))
	}
	// The value is centuries outside a short interval.
	return project(px.Lo, width, offset.Seconds(), total.Seconds())
}

// project returns lo + width*num/den truncated toward zero. The epsilon
// always nudges toward +Inf, so on a reversed range (negative width) an
// exact fraction lands one pixel above the true position, e.g. the end of
// {100, 0} maps to 1.
func project(lo int, width, num, den float64) int {
	if den == 0 {
		return lo
	}
	v := width*num/den + roundingEpsilon
	v = math.Max(math.MinInt32, math.Min(math.MaxInt32, v))
	return lo + int(v)
}
