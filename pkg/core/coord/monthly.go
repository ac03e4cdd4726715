package coord

// MonthlyCoord views an interval at month granularity. Key points fall on
// the first day of a month and include the month containing end.
type MonthlyCoord[T Instant[T]] struct {
	begin, end T
}

// NewMonthlyCoord returns a month-granular coordinate over [begin, end].
func NewMonthlyCoord[T Instant[T]](begin, end T) MonthlyCoord[T] {
	return MonthlyCoord[T]{begin: begin, end: end}
}

func (c MonthlyCoord[T]) Range() (T, T) { return c.begin, c.end }

func (c MonthlyCoord[T]) Map(v T, px PixelRange) int {
	return MapCoord(v, c.begin, c.end, px)
}

// KeyPoints steps by 1, 3 or 6 months, whichever is the first to fit
// maxPoints (inclusive), and otherwise switches to yearly steps.
func (c MonthlyCoord[T]) KeyPoints(maxPoints int) []T {
	return monthlyKeyPoints(c.begin, c.end, maxPoints)
}

// Next returns the same day of the following month, clamped to that month's
// length.
func (c MonthlyCoord[T]) Next(v T) T {
	return shiftMonth(v, v.DateCeil(), 1)
}

// Previous returns the same day of the preceding month, clamped to that
// month's length.
func (c MonthlyCoord[T]) Previous(v T) T {
	return shiftMonth(v, v.DateFloor(), -1)
}

func shiftMonth[T Instant[T]](proto T, from Date, n int) T {
	ym := yearMonthOf(from).add(n)
	day := min(from.Day(), ym.daysIn())
	return proto.EarliestOn(NewDate(ym.year, ym.month, day, proto.Location()))
}
