package coord

import "time"

// YearlyCoord views an interval at year granularity. Key points fall on the
// first day of the interval's first whole month, every n years.
type YearlyCoord[T Instant[T]] struct {
	begin, end T
}

// NewYearlyCoord returns a year-granular coordinate over [begin, end].
func NewYearlyCoord[T Instant[T]](begin, end T) YearlyCoord[T] {
	return YearlyCoord[T]{begin: begin, end: end}
}

func (c YearlyCoord[T]) Range() (T, T) { return c.begin, c.end }

func (c YearlyCoord[T]) Map(v T, px PixelRange) int {
	return MapCoord(v, c.begin, c.end, px)
}

func (c YearlyCoord[T]) KeyPoints(maxPoints int) []T {
	return yearlyKeyPoints(c.begin, c.end, maxPoints)
}

// Next returns January 1 of the year after v.
func (c YearlyCoord[T]) Next(v T) T {
	return v.EarliestOn(NewDate(v.DateFloor().Year()+1, time.January, 1, v.Location()))
}

// Previous returns January 1 of the year before the one v rounds up into.
func (c YearlyCoord[T]) Previous(v T) T {
	return v.EarliestOn(NewDate(v.DateCeil().Year()-1, time.January, 1, v.Location()))
}
