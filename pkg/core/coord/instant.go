package coord

import "time"

// Instant is a point on a calendar-aware time axis. Date and DateTime
// implement it. The type parameter lets operations return values of the
// same kind they were given.
type Instant[T any] interface {
	// DateFloor returns the calendar day containing the instant.
	DateFloor() Date
	// DateCeil returns the first calendar day starting at or after the instant.
	DateCeil() Date
	// Sub returns the signed span from o to the receiver.
	Sub(o T) Span
	// Before reports whether the receiver is strictly earlier than o.
	Before(o T) bool
	// Location returns the time zone of the instant.
	Location() *time.Location
	// EarliestOn returns the earliest instant of this kind on day d.
	EarliestOn(d Date) T
}

// =============================================================================
// Date
// =============================================================================

// Date is a calendar day in a time zone.
type Date struct {
	t time.Time // midnight (or the first valid instant) of the day
}

// NewDate returns the given calendar day. Out-of-range months and days are
// normalized the way time.Date normalizes them. A nil loc means UTC.
func NewDate(year int, month time.Month, day int, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// DateOf returns the calendar day containing t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d, t.Location())
}

func (d Date) Year() int                { return d.t.Year() }
func (d Date) Month() time.Month        { return d.t.Month() }
func (d Date) Day() int                 { return d.t.Day() }
func (d Date) Location() *time.Location { return d.t.Location() }

// Time returns the start of the day.
func (d Date) Time() time.Time { return d.t }

// AddDays returns the day n days after d (before d when n is negative).
func (d Date) AddDays(n int) Date {
	y, m, day := d.t.Date()
	return NewDate(y, m, day+n, d.t.Location())
}

// Equal reports whether d and o name the same calendar day.
func (d Date) Equal(o Date) bool {
	return d.ordinal() == o.ordinal()
}

func (d Date) String() string { return d.t.Format(time.DateOnly) }

// ordinal counts days since 1970-01-01 on the proleptic Gregorian calendar,
// ignoring the time zone offset.
func (d Date) ordinal() int64 {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Unix() / secsPerDay
}

func (d Date) DateFloor() Date        { return d }
func (d Date) DateCeil() Date         { return d }
func (d Date) EarliestOn(o Date) Date { return o }
func (d Date) Before(o Date) bool     { return d.ordinal() < o.ordinal() }

// Sub returns the whole-day span between two calendar days.
func (d Date) Sub(o Date) Span { return DaysSpan(d.ordinal() - o.ordinal()) }

// =============================================================================
// DateTime
// =============================================================================

// DateTime is an instant with nanosecond precision in a time zone.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime { return DateTime{t: t} }

// Time returns the wrapped time.
func (dt DateTime) Time() time.Time { return dt.t }

func (dt DateTime) Location() *time.Location { return dt.t.Location() }

// Add returns dt+d.
func (dt DateTime) Add(d time.Duration) DateTime { return DateTime{t: dt.t.Add(d)} }

// Equal reports whether dt and o are the same instant.
func (dt DateTime) Equal(o DateTime) bool { return dt.t.Equal(o.t) }

func (dt DateTime) String() string { return dt.t.Format(time.RFC3339Nano) }

func (dt DateTime) DateFloor() Date { return DateOf(dt.t) }

// DateCeil returns the next calendar day unless dt falls exactly on midnight.
func (dt DateTime) DateCeil() Date {
	d := DateOf(dt.t)
	if dt.t.Hour() != 0 || dt.t.Minute() != 0 || dt.t.Second() != 0 || dt.t.Nanosecond() != 0 {
		return d.AddDays(1)
	}
	return d
}

func (dt DateTime) Sub(o DateTime) Span        { return spanBetween(dt.t, o.t) }
func (dt DateTime) Before(o DateTime) bool     { return dt.t.Before(o.t) }
func (dt DateTime) EarliestOn(d Date) DateTime { return DateTime{t: d.t} }
