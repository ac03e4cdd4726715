package axis

import (
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/timeaxis/pkg/core/coord"
)

func TestBuildDate(t *testing.T) {
	c := coord.NewDateCoord(
		coord.NewDate(2021, time.January, 1, time.UTC),
		coord.NewDate(2021, time.January, 11, time.UTC),
	)
	l := Build(c, 20, coord.PixelRange{Lo: 0, Hi: 100}, TimeLabels[coord.Date](""))

	if len(l.Ticks) != 11 {
		t.Fatalf("got %d ticks, want 11", len(l.Ticks))
	}
	first, last := l.Ticks[0], l.Ticks[10]
	if first.Value != "2021-01-01" || first.Pos != 0 || first.Label != "2021-01-01" {
		t.Errorf("first tick = %+v", first)
	}
	if last.Value != "2021-01-11" || last.Pos != 100 {
		t.Errorf("last tick = %+v", last)
	}
	if l.Begin != "2021-01-01" || l.End != "2021-01-11" || l.MaxPoints != 20 {
		t.Errorf("layout header = %+v", l)
	}
}

func TestBuildDateAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Clocks spring forward on 2021-03-14, so one day is 23h long.
	c := coord.NewDateCoord(
		coord.NewDate(2021, time.March, 10, ny),
		coord.NewDate(2021, time.March, 18, ny),
	)
	l := Build(c, 10, coord.PixelRange{Lo: 0, Hi: 800}, TimeLabels[coord.Date](""))

	if len(l.Ticks) != 9 {
		t.Fatalf("got %d ticks, want 9", len(l.Ticks))
	}
	for _, tk := range l.Ticks {
		if tk.Label != tk.Value {
			t.Errorf("tick %s label = %q, want the date", tk.Value, tk.Label)
		}
	}
}

func TestBuildDuration(t *testing.T) {
	c := coord.NewDurationCoord(0, time.Second)
	l := Build(c, 5, coord.PixelRange{Lo: 0, Hi: 800}, DurationLabels())

	var pos []int
	var labels []string
	for _, tk := range l.Ticks {
		pos = append(pos, tk.Pos)
		labels = append(labels, tk.Label)
	}
	if want := []int{0, 160, 320, 480, 640}; !slices.Equal(pos, want) {
		t.Errorf("positions = %v, want %v", pos, want)
	}
	if want := []string{"0s", "200ms", "400ms", "600ms", "800ms"}; !slices.Equal(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestBuildEmpty(t *testing.T) {
	c := coord.NewDurationCoord(time.Second, 0)
	l := Build(c, 5, coord.PixelRange{Lo: 0, Hi: 800}, nil)
	if l.Ticks == nil || len(l.Ticks) != 0 {
		t.Errorf("Ticks = %#v, want empty non-nil slice", l.Ticks)
	}
}

func TestLayoutWidth(t *testing.T) {
	if got := (Layout{Lo: 10, Hi: 110}).Width(); got != 100 {
		t.Errorf("Width() = %d, want 100", got)
	}
	if got := (Layout{Lo: 110, Hi: 10}).Width(); got != 100 {
		t.Errorf("reversed Width() = %d, want 100", got)
	}
}

func dts(times ...time.Time) []coord.DateTime {
	out := make([]coord.DateTime, len(times))
	for i, t := range times {
		out[i] = coord.NewDateTime(t)
	}
	return out
}

func TestTimeLabels(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		pattern string
		times   []time.Time
		want    []string
	}{
		{
			name:  "sub-second",
			times: []time.Time{base.Add(300 * time.Millisecond), base.Add(400 * time.Millisecond)},
			want:  []string{"00:00:00.3", "00:00:00.4"},
		},
		{
			name:  "quarter seconds",
			times: []time.Time{base.Add(250 * time.Millisecond), base.Add(500 * time.Millisecond)},
			want:  []string{"00:00:00.25", "00:00:00.50"},
		},
		{
			name:  "seconds",
			times: []time.Time{base.Add(10 * time.Second), base.Add(20 * time.Second)},
			want:  []string{"00:00:10", "00:00:20"},
		},
		{
			name:  "minutes",
			times: []time.Time{base.Add(10*time.Hour + 20*time.Minute), base.Add(10*time.Hour + 30*time.Minute)},
			want:  []string{"10:20", "10:30"},
		},
		{
			name:  "hours across midnight",
			times: []time.Time{base.Add(16 * time.Hour), base.Add(24 * time.Hour)},
			want:  []string{"Jan 01 16:00", "Jan 02 00:00"},
		},
		{
			name:  "weeks",
			times: []time.Time{base, base.AddDate(0, 0, 7)},
			want:  []string{"2020-01-01", "2020-01-08"},
		},
		{
			name:  "months",
			times: []time.Time{base, base.AddDate(0, 1, 0), base.AddDate(0, 2, 0)},
			want:  []string{"Jan 2020", "Feb 2020", "Mar 2020"},
		},
		{
			name:  "years",
			times: []time.Time{base, base.AddDate(10, 0, 0)},
			want:  []string{"2020", "2030"},
		},
		{
			name:  "single point",
			times: []time.Time{base.Add(90 * time.Minute)},
			want:  []string{"2020-01-01 01:30:00"},
		},
		{
			name:    "custom pattern",
			pattern: "%d/%m",
			times:   []time.Time{base.AddDate(0, 1, 0)},
			want:    []string{"01/02"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeLabels[coord.DateTime](tt.pattern)(dts(tt.times...))
			if !slices.Equal(got, tt.want) {
				t.Errorf("labels = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDurationLabels(t *testing.T) {
	const day = 24 * time.Hour
	got := DurationLabels()([]time.Duration{-2 * day, 0, 2 * day})
	if want := []string{"-2d", "0d", "2d"}; !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	got = DurationLabels()([]time.Duration{0, 90 * time.Minute})
	if want := []string{"0s", "1h30m0s"}; !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestValidatePattern(t *testing.T) {
	for _, p := range []string{"%Y-%m-%d", "%H:%M", "week %U"} {
		if err := ValidatePattern(p); err != nil {
			t.Errorf("ValidatePattern(%q) = %v", p, err)
		}
	}
}
