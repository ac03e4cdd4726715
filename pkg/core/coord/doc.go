// Package coord maps calendar dates, timestamps and durations onto a pixel
// axis and picks a budgeted set of "nice" key points for tick marks.
//
// # Coordinates
//
// Every coordinate implements [Ranged]: it reports its interval, projects a
// value linearly onto a [PixelRange], and returns key points that never
// exceed the caller's budget by more than one.
//
//   - [DateCoord] steps by days, weeks, or multiples of weeks.
//   - [MonthlyCoord] steps by 1, 3 or 6 months and falls back to years.
//   - [YearlyCoord] steps by 1, 2, 5, 10, ... years.
//   - [DateTimeCoord] steps by sub-second to sub-day periods, falling back
//     to whole days for long intervals.
//   - [DurationCoord] works on elapsed time with no calendar.
//
// Calendar coordinates also implement [Discrete], which moves a value one
// unit forward or back.
//
// # Mapping
//
// [MapCoord] projects a value as lo + (hi-lo)*offset/total. Nanosecond
// arithmetic is used while the interval fits in an int64; longer intervals
// divide whole days instead. A small epsilon is added before truncating so
// that exact fractions do not land one pixel short.
//
// Calendar arithmetic is delegated to the time package; key points are
// produced in the location of the interval's begin value.
package coord
