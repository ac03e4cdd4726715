package pipeline

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/timeaxis/pkg/core/coord"
	"github.com/matzehuels/timeaxis/pkg/errors"
)

// localDateTime is the zone-less datetime layout read in the configured zone.
const localDateTime = "2006-01-02T15:04:05"

// ParseDate reads a 2006-01-02 date in loc.
func ParseDate(s string, loc *time.Location) (coord.Date, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return coord.Date{}, errors.Wrap(errors.ErrCodeInvalidTime, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return coord.DateOf(t), nil
}

// ParseDateTime reads an RFC 3339 timestamp, a zone-less
// 2006-01-02T15:04:05 timestamp or a bare date. Timestamps carrying an
// offset are converted into loc so ticks align to loc's wall clock.
func ParseDateTime(s string, loc *time.Location) (coord.DateTime, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return coord.NewDateTime(t.In(loc)), nil
	}
	for _, layout := range []string{localDateTime + ".999999999", time.DateOnly} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return coord.NewDateTime(t), nil
		}
	}
	return coord.DateTime{}, errors.New(errors.ErrCodeInvalidTime, "invalid datetime %q (want RFC 3339 or YYYY-MM-DDTHH:MM:SS)", s)
}

// ParseDuration reads Go duration syntax ("1h30m"), a whole number of days
// ("-73000d") or a plain integer of nanoseconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err == nil && n <= math.MaxInt64/int64(24*time.Hour) && n >= math.MinInt64/int64(24*time.Hour) {
			return time.Duration(n) * 24 * time.Hour, nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidTime, "invalid duration %q (want e.g. 1h30m, 7d or nanoseconds)", s)
}

// isDateOnly reports whether s is a bare YYYY-MM-DD date.
func isDateOnly(s string) bool {
	_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	return err == nil
}
