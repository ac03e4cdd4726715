package errors

import (
	"slices"
	"strings"
	"time"
)

// maxPointsLimit bounds the key point budget accepted from users. Larger
// budgets are legal for the core but produce unreadable axes and large
// responses.
const maxPointsLimit = 10_000

// Output size limits. Rasters and text rulers allocate in proportion to
// these, so requests beyond them are rejected before rendering.
const (
	maxPixelCoord = 1_000_000
	maxPixelSpan  = 20_000
	maxHeight     = 2_000
	maxColumns    = 1_000
)

// ValidateKind checks that kind is one of the known axis kinds.
func ValidateKind(kind string, known ...string) error {
	if kind == "" {
		return New(ErrCodeInvalidKind, "axis kind cannot be empty")
	}
	if !slices.Contains(known, kind) {
		return New(ErrCodeInvalidKind, "unknown axis kind %q (want one of %s)", kind, strings.Join(known, ", "))
	}
	return nil
}

// ValidateMaxPoints checks the key point budget.
func ValidateMaxPoints(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "max points must be at least 1, got %d", n)
	}
	if n > maxPointsLimit {
		return New(ErrCodeInvalidInput, "max points too large (max %d), got %d", maxPointsLimit, n)
	}
	return nil
}

// ValidateTimezone resolves an IANA zone name. "UTC" and "Local" are
// accepted as in time.LoadLocation.
func ValidateTimezone(name string) (*time.Location, error) {
	if name == "" {
		return nil, New(ErrCodeInvalidTimezone, "timezone cannot be empty")
	}
	if strings.ContainsAny(name, "\x00\\") || strings.Contains(name, "..") {
		return nil, New(ErrCodeInvalidTimezone, "timezone contains invalid characters: %q", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, Wrap(ErrCodeInvalidTimezone, err, "unknown timezone %q", name)
	}
	return loc, nil
}

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string, supported ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(supported, ", "))
	}
	return nil
}

// ValidatePixels checks that a pixel range has non-zero width and fits the
// output size limits. Reversed ranges are allowed.
func ValidatePixels(lo, hi int) error {
	if lo == hi {
		return New(ErrCodeInvalidRange, "pixel range [%d, %d] has zero width", lo, hi)
	}
	if lo < -maxPixelCoord || lo > maxPixelCoord || hi < -maxPixelCoord || hi > maxPixelCoord {
		return New(ErrCodeInvalidRange, "pixel range [%d, %d] outside ±%d", lo, hi, maxPixelCoord)
	}
	if span := max(lo, hi) - min(lo, hi); span > maxPixelSpan {
		return New(ErrCodeInvalidRange, "pixel range [%d, %d] too wide (max %d), got %d", lo, hi, maxPixelSpan, span)
	}
	return nil
}

// ValidateHeight checks an output height in pixels. Zero selects the
// renderer default.
func ValidateHeight(h int) error {
	if h < 0 || h > maxHeight {
		return New(ErrCodeInvalidInput, "height must be between 0 and %d, got %d", maxHeight, h)
	}
	return nil
}

// ValidateColumns checks the width of text output. Zero selects the
// default.
func ValidateColumns(n int) error {
	if n < 0 || n > maxColumns {
		return New(ErrCodeInvalidInput, "columns must be between 0 and %d, got %d", maxColumns, n)
	}
	return nil
}
