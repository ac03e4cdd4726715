package coord

// DateCoord is a coordinate over calendar days. Both bounds are included in
// its key points.
type DateCoord struct {
	begin, end Date
}

var _ Discrete[Date] = DateCoord{}

// NewDateCoord returns a coordinate over [begin, end].
func NewDateCoord(begin, end Date) DateCoord {
	return DateCoord{begin: begin, end: end}
}

func (c DateCoord) Range() (Date, Date) { return c.begin, c.end }

func (c DateCoord) Map(v Date, px PixelRange) int {
	return MapCoord(v, c.begin, c.end, px)
}

// KeyPoints returns every day when the days fit the budget, every week when
// the weeks do, and otherwise every n-th week with n = ceil(weeks/maxPoints).
func (c DateCoord) KeyPoints(maxPoints int) []Date {
	return dateKeyPoints(c.begin, c.end, maxPoints)
}

func (c DateCoord) Next(d Date) Date     { return d.AddDays(1) }
func (c DateCoord) Previous(d Date) Date { return d.AddDays(-1) }

// Monthly returns a month-granular view of the same interval.
func (c DateCoord) Monthly() MonthlyCoord[Date] { return NewMonthlyCoord(c.begin, c.end) }

// Yearly returns a year-granular view of the same interval.
func (c DateCoord) Yearly() YearlyCoord[Date] { return NewYearlyCoord(c.begin, c.end) }

func dateKeyPoints(begin, end Date, maxPoints int) []Date {
	if maxPoints <= 0 || end.Before(begin) {
		return nil
	}
	span := end.Sub(begin)
	days, weeks := span.Days(), span.Weeks()
	budget := int64(maxPoints)

	switch {
	case days <= budget:
		return stepDays(begin, days, 1)
	case weeks == 0:
		// More days than the budget but less than a week.
		return stepDays(begin, days, ceilDiv(days, budget))
	case weeks <= budget:
		return stepDays(begin, weeks*daysPerWeek, daysPerWeek)
	}
	return stepDays(begin, weeks*daysPerWeek, ceilDiv(weeks, budget)*daysPerWeek)
}

// stepDays returns begin+k*step for every k*step <= limit.
func stepDays(begin Date, limit, step int64) []Date {
	points := make([]Date, 0, limit/step+1)
	for off := int64(0); off <= limit; off += step {
		points = append(points, begin.AddDays(int(off)))
	}
	return points
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
