package coord

import (
	"testing"
	"time"
)

func TestMapCoord(t *testing.T) {
	c := NewDateCoord(day(2021, 1, 1), day(2021, 1, 11))
	tests := []struct {
		name string
		v    Date
		px   PixelRange
		want int
	}{
		{"begin", day(2021, 1, 1), PixelRange{0, 100}, 0},
		{"end", day(2021, 1, 11), PixelRange{0, 100}, 100},
		{"middle", day(2021, 1, 6), PixelRange{0, 100}, 50},
		{"offset range", day(2021, 1, 6), PixelRange{20, 120}, 70},
		{"reversed begin", day(2021, 1, 1), PixelRange{100, 0}, 100},
		{"reversed end", day(2021, 1, 11), PixelRange{100, 0}, 1},
		{"reversed middle", day(2021, 1, 6), PixelRange{100, 0}, 51},
		{"third", day(2021, 1, 4), PixelRange{0, 10}, 3},
		{"extrapolate after", day(2021, 1, 21), PixelRange{0, 100}, 200},
		{"extrapolate before truncates toward zero", day(2020, 12, 22), PixelRange{0, 100}, -99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Map(tt.v, tt.px); got != tt.want {
				t.Errorf("Map(%v, %v) = %d, want %d", tt.v, tt.px, got, tt.want)
			}
		})
	}
}

func TestMapCoordZeroLength(t *testing.T) {
	c := NewDateTimeCoord(at(2021, 1, 1, 0, 0), at(2021, 1, 1, 0, 0))
	for _, v := range []DateTime{at(2020, 1, 1, 0, 0), at(2021, 1, 1, 0, 0), at(2022, 1, 1, 0, 0)} {
		if got := c.Map(v, PixelRange{40, 400}); got != 40 {
			t.Errorf("Map(%v) = %d, want 40", v, got)
		}
	}
}

func TestMapCoordInverted(t *testing.T) {
	c := NewDateCoord(day(2021, 1, 11), day(2021, 1, 1))
	px := PixelRange{0, 100}
	if got := c.Map(day(2021, 1, 11), px); got != 0 {
		t.Errorf("Map(begin) = %d, want 0", got)
	}
	if got := c.Map(day(2021, 1, 1), px); got != 100 {
		t.Errorf("Map(end) = %d, want 100", got)
	}
}

func TestMapCoordDayFallback(t *testing.T) {
	begin := NewDateTime(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC))
	end := NewDateTime(time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewDateTimeCoord(begin, end)
	px := PixelRange{0, 1000}

	if got := c.Map(NewDateTime(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)), px); got != 499 {
		t.Errorf("Map(2000) = %d, want 499", got)
	}
	if got := c.Map(begin, px); got != 0 {
		t.Errorf("Map(begin) = %d, want 0", got)
	}
	if got := c.Map(end, px); got != 1000 {
		t.Errorf("Map(end) = %d, want 1000", got)
	}
}

func TestMapCoordFarOutsideShortRange(t *testing.T) {
	c := NewDateTimeCoord(at(2000, 1, 1, 0, 0), at(2000, 1, 1, 1, 0))
	got := c.Map(NewDateTime(time.Date(2600, 1, 1, 0, 0, 0, 0, time.UTC)), PixelRange{0, 100})
	if got <= 100 {
		t.Errorf("Map(2600) = %d, want far past the end", got)
	}
}

func TestMapCoordMonotonic(t *testing.T) {
	begin := time.Date(2021, 3, 14, 1, 59, 26, 535897932, time.UTC)
	end := begin.Add(17*time.Hour + 13*time.Second)
	c := NewDateTimeCoord(NewDateTime(begin), NewDateTime(end))

	for _, px := range []PixelRange{{0, 640}, {480, 0}} {
		prev := c.Map(NewDateTime(begin), px)
		if prev != px.Lo {
			t.Errorf("Map(begin) = %d, want %d", prev, px.Lo)
		}
		for v := begin; v.Before(end); v = v.Add(7 * time.Minute) {
			got := c.Map(NewDateTime(v), px)
			if (px.Lo <= px.Hi && got < prev) || (px.Lo > px.Hi && got > prev) {
				t.Fatalf("Map(%v) = %d after %d, not monotonic for %v", v, got, prev, px)
			}
			prev = got
		}
		if got := c.Map(NewDateTime(end), px); got-px.Hi > 1 || px.Hi-got > 1 {
			t.Errorf("Map(end) = %d, want within 1 of %d", got, px.Hi)
		}
	}
}
