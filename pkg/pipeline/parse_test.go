package pipeline

import (
	"testing"
	"time"

	"github.com/matzehuels/timeaxis/pkg/errors"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2021-03-04 ", time.UTC)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.String() != "2021-03-04" {
		t.Errorf("ParseDate() = %v, want 2021-03-04", d)
	}
	if _, err := ParseDate("2021-13-01", time.UTC); !errors.Is(err, errors.ErrCodeInvalidTime) {
		t.Errorf("ParseDate(bad month) error = %v, want INVALID_TIME", err)
	}
}

func TestParseDateTime(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2021-01-01T12:00:00Z", time.Date(2021, 1, 1, 13, 0, 0, 0, berlin)},
		{"2021-01-01T12:00:00", time.Date(2021, 1, 1, 12, 0, 0, 0, berlin)},
		{"2021-01-01T12:00:00.25", time.Date(2021, 1, 1, 12, 0, 0, 250_000_000, berlin)},
		{"2021-01-01", time.Date(2021, 1, 1, 0, 0, 0, 0, berlin)},
	}
	for _, tt := range tests {
		got, err := ParseDateTime(tt.in, berlin)
		if err != nil {
			t.Errorf("ParseDateTime(%q) error = %v", tt.in, err)
			continue
		}
		if !got.Time().Equal(tt.want) || got.Location() != berlin {
			t.Errorf("ParseDateTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseDateTime("noon", berlin); !errors.Is(err, errors.ErrCodeInvalidTime) {
		t.Errorf("ParseDateTime(noon) error = %v, want INVALID_TIME", err)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"1h30m", 90 * time.Minute, false},
		{"-500ms", -500 * time.Millisecond, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"-73000d", -73000 * 24 * time.Hour, false},
		{"1500", 1500, false},
		{"999999999d", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
