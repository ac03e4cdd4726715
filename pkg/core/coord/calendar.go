package coord

import (
	"time"

	"github.com/matzehuels/timeaxis/pkg/core/period"
)

// yearMonth is a (year, month) pair with month arithmetic that carries into
// the year.
type yearMonth struct {
	year  int
	month time.Month
}

func yearMonthOf(d Date) yearMonth {
	return yearMonth{year: d.Year(), month: d.Month()}
}

func (ym yearMonth) add(n int) yearMonth {
	idx := ym.year*12 + int(ym.month-1) + n
	year, rem := idx/12, idx%12
	if rem < 0 {
		year--
		rem += 12
	}
	return yearMonth{year: year, month: time.Month(rem + 1)}
}

// monthsUntil returns the number of months from ym to o.
func (ym yearMonth) monthsUntil(o yearMonth) int {
	return (o.year-ym.year)*12 + int(o.month) - int(ym.month)
}

func (ym yearMonth) after(o yearMonth) bool {
	return ym.monthsUntil(o) < 0
}

// daysIn returns the length of the month.
func (ym yearMonth) daysIn() int {
	return time.Date(ym.year, ym.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (ym yearMonth) first(loc *time.Location) Date {
	return NewDate(ym.year, ym.month, 1, loc)
}

// calendarBounds returns the first whole month starting at or after begin
// and the month containing end.
func calendarBounds[T Instant[T]](begin, end T) (start, stop yearMonth) {
	first := begin.DateCeil()
	start = yearMonthOf(first)
	if first.Day() != 1 {
		start = start.add(1)
	}
	return start, yearMonthOf(end.DateFloor())
}

func monthlyKeyPoints[T Instant[T]](begin, end T, maxPoints int) []T {
	if maxPoints <= 0 || end.Before(begin) {
		return nil
	}
	start, stop := calendarBounds(begin, end)
	total := start.monthsUntil(stop)
	if total < 0 {
		return nil
	}
	switch {
	case total <= maxPoints:
		return stepMonths(begin, start, stop, 1)
	case total <= 3*maxPoints:
		return stepMonths(begin, start, stop, 3)
	case total <= 6*maxPoints:
		return stepMonths(begin, start, stop, 6)
	}
	return stepYears(begin, start, stop, maxPoints)
}

func stepMonths[T Instant[T]](proto T, start, stop yearMonth, step int) []T {
	loc := proto.Location()
	points := make([]T, 0, start.monthsUntil(stop)/step+1)
	for ym := start; !ym.after(stop); ym = ym.add(step) {
		points = append(points, proto.EarliestOn(ym.first(loc)))
	}
	return points
}

func yearlyKeyPoints[T Instant[T]](begin, end T, maxPoints int) []T {
	if maxPoints <= 0 || end.Before(begin) {
		return nil
	}
	start, stop := calendarBounds(begin, end)
	return stepYears(begin, start, stop, maxPoints)
}

// stepYears emits the first day of start.month every n years, where n is the
// smallest 1, 2, 5, 10, ... step that keeps the year count within budget.
func stepYears[T Instant[T]](proto T, start, stop yearMonth, maxPoints int) []T {
	lastYear := stop.year
	if start.month > stop.month {
		lastYear--
	}
	years := int64(lastYear - start.year + 1)
	if years <= 0 {
		return nil
	}
	step, ok := period.NiceStep(years, maxPoints)
	if !ok {
		return nil
	}
	loc := proto.Location()
	points := make([]T, 0, years/step+1)
	for y := int64(start.year); y <= int64(lastYear); y += step {
		points = append(points, proto.EarliestOn(NewDate(int(y), start.month, 1, loc)))
	}
	return points
}
