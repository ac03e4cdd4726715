package coord

import (
	"fmt"
	"time"
)

const (
	nsPerSec    = int64(time.Second)
	secsPerDay  = int64(24 * 60 * 60)
	daysPerWeek = 7
)

// Span is a signed length of time between two instants. Unlike
// time.Duration it does not saturate: it covers any difference between two
// time.Time values, so callers can detect when nanosecond precision is lost.
type Span struct {
	secs int64
	nsec int64 // always in [0, 1e9)
}

func makeSpan(secs, nsec int64) Span {
	secs += nsec / nsPerSec
	nsec %= nsPerSec
	if nsec < 0 {
		nsec += nsPerSec
		secs--
	}
	return Span{secs: secs, nsec: nsec}
}

// SpanOf converts d to a Span.
func SpanOf(d time.Duration) Span {
	return makeSpan(int64(d/time.Second), int64(d%time.Second))
}

// DaysSpan returns a Span of n whole days.
func DaysSpan(n int64) Span {
	return Span{secs: n * secsPerDay}
}

// spanBetween returns a-b.
func spanBetween(a, b time.Time) Span {
	return makeSpan(a.Unix()-b.Unix(), int64(a.Nanosecond())-int64(b.Nanosecond()))
}

// durationSpan returns a-b without overflowing.
func durationSpan(a, b time.Duration) Span {
	return makeSpan(int64(a/time.Second)-int64(b/time.Second), int64(a%time.Second)-int64(b%time.Second))
}

// Nanoseconds returns the span as a nanosecond count. It reports false when
// the count does not fit in an int64.
func (s Span) Nanoseconds() (int64, bool) {
	secs, nsec := s.secs, s.nsec
	if secs < 0 && nsec > 0 {
		secs++
		nsec -= nsPerSec
	}
	n := secs * nsPerSec
	if n/nsPerSec != secs {
		return 0, false
	}
	total := n + nsec
	if (nsec > 0 && total < n) || (nsec < 0 && total > n) {
		return 0, false
	}
	return total, true
}

// Seconds returns the span in floating-point seconds.
func (s Span) Seconds() float64 {
	return float64(s.secs) + float64(s.nsec)/float64(nsPerSec)
}

// Days returns the number of whole days in s, truncated toward zero.
func (s Span) Days() int64 {
	secs := s.secs
	if secs < 0 && s.nsec > 0 {
		secs++
	}
	return secs / secsPerDay
}

// Weeks returns the number of whole weeks in s, truncated toward zero.
func (s Span) Weeks() int64 {
	return s.Days() / daysPerWeek
}

// IsZero reports whether s has no length.
func (s Span) IsZero() bool {
	return s.secs == 0 && s.nsec == 0
}

// Compare returns -1, 0 or +1 depending on whether s is shorter than, equal
// to, or longer than o.
func (s Span) Compare(o Span) int {
	switch {
	case s.secs < o.secs:
		return -1
	case s.secs > o.secs:
		return 1
	case s.nsec < o.nsec:
		return -1
	case s.nsec > o.nsec:
		return 1
	}
	return 0
}

func (s Span) String() string {
	if ns, ok := s.Nanoseconds(); ok {
		return time.Duration(ns).String()
	}
	return fmt.Sprintf("%dd", s.Days())
}
