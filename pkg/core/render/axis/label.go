package axis

import (
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/strftime"
)

// Instant is a value that can be labelled as a point in time.
type Instant interface {
	Time() time.Time
}

// Label formats, finest first. A tick spacing below limit uses pattern.
var timeFormats = []struct {
	limit   time.Duration
	pattern string
}{
	{time.Second, "%H:%M:%S"},
	{time.Minute, "%H:%M:%S"},
	{24 * time.Hour, "%H:%M"},
	{28 * 24 * time.Hour, "%Y-%m-%d"},
	{365 * 24 * time.Hour, "%b %Y"},
}

const (
	yearPattern    = "%Y"
	multiDayPrefix = "%b %d "
	singlePattern  = "%Y-%m-%d %H:%M:%S"
)

// ValidatePattern reports whether pattern is a usable strftime pattern.
func ValidatePattern(pattern string) error {
	_, err := strftime.Format(pattern, time.Time{})
	return err
}

// TimeLabels labels instants with a strftime pattern. An empty pattern picks
// one from the spacing between points: clock time for sub-day spacing (with
// the date when the points cross midnight), dates for daily to weekly
// spacing, month and year for monthly spacing, and the year beyond that.
func TimeLabels[T Instant](pattern string) Labeler[T] {
	return func(points []T) []string {
		times := make([]time.Time, len(points))
		for i, p := range points {
			times[i] = p.Time()
		}
		p, frac := pattern, 0
		if p == "" {
			p, frac = choosePattern(times)
		}
		labels := make([]string, len(times))
		for i, t := range times {
			labels[i] = formatTime(p, t, frac)
		}
		return labels
	}
}

// choosePattern returns a pattern and the number of fractional second digits
// the labels need.
func choosePattern(times []time.Time) (string, int) {
	if len(times) < 2 {
		return singlePattern, 0
	}
	step := minStep(times)
	for _, f := range timeFormats {
		if step >= f.limit {
			continue
		}
		p := f.pattern
		if f.limit <= 24*time.Hour && !sameDay(times[0], times[len(times)-1]) {
			p = multiDayPrefix + p
		}
		if f.limit == time.Second {
			return p, fractionDigits(step)
		}
		return p, 0
	}
	return yearPattern, 0
}

func formatTime(pattern string, t time.Time, frac int) string {
	s, err := strftime.Format(pattern, t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	if frac > 0 {
		s += fmt.Sprintf(".%0*d", frac, t.Nanosecond()/pow10(9-frac))
	}
	return s
}

// DurationLabels labels elapsed time. Whole-day multiples are written in
// days; everything else uses Go duration syntax.
func DurationLabels() Labeler[time.Duration] {
	return func(points []time.Duration) []string {
		const day = 24 * time.Hour
		days := len(points) > 0
		for _, p := range points {
			if p%day != 0 {
				days = false
				break
			}
		}
		labels := make([]string, len(points))
		for i, p := range points {
			if days {
				labels[i] = fmt.Sprintf("%dd", p/day)
			} else {
				labels[i] = p.String()
			}
		}
		return labels
	}
}

// minStep returns the smallest gap between neighbouring points. Points that
// all start a calendar day are measured in whole civil days, so a 23h or 25h
// day around a DST change still counts as one day.
func minStep(times []time.Time) time.Duration {
	gap := func(a, b time.Time) time.Duration { return b.Sub(a) }
	if allStartOfDay(times) {
		gap = func(a, b time.Time) time.Duration {
			return time.Duration(civilDay(b)-civilDay(a)) * 24 * time.Hour
		}
	}
	step := gap(times[0], times[1])
	for i := 2; i < len(times); i++ {
		if d := gap(times[i-1], times[i]); d < step {
			step = d
		}
	}
	return step
}

// allStartOfDay reports whether every t is the first instant of its day in
// its own location. Zones that skip midnight start the day later.
func allStartOfDay(times []time.Time) bool {
	for _, t := range times {
		y, m, d := t.Date()
		if !time.Date(y, m, d, 0, 0, 0, 0, t.Location()).Equal(t) {
			return false
		}
	}
	return true
}

// civilDay numbers calendar days independently of the zone offset.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// fractionDigits returns how many decimals are needed to tell apart ticks
// that are step apart.
func fractionDigits(step time.Duration) int {
	digits := 9
	for digits > 1 && step%time.Duration(pow10(10-digits)) == 0 {
		digits--
	}
	return digits
}

func pow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}
	return p
}

// Describe returns a short human description of a pattern for UI hints.
func Describe(pattern string) string {
	r := strings.NewReplacer("%Y", "yyyy", "%m", "mm", "%d", "dd", "%H", "HH", "%M", "MM", "%S", "SS", "%b", "Mon")
	return r.Replace(pattern)
}
