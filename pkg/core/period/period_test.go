package period

import "testing"

func TestPerPoint(t *testing.T) {
	tests := []struct {
		name     string
		total    uint64
		max      int
		subDaily bool
		want     uint64
		wantOK   bool
	}{
		{"one second in ten", Second, 10, false, 100_000_000, true},
		{"one second in two", Second, 2, false, 500_000_000, true},
		{"tiny span", 5, 1, false, 5, true},
		{"one minute", 60 * Second, 10, false, 10 * Second, true},
		{"one hour", Hour, 10, false, 600 * Second, true},
		{"one day sub-daily", Day, 10, true, 5 * Hour, true},
		{"ten days sub-daily", 10 * Day, 10, true, Day, true},
		{"one day in five", Day, 5, true, 8 * Hour, true},
		{"hundred days sub-daily", 100 * Day, 10, true, 0, false},
		{"hundred days", 100 * Day, 10, false, 10 * Day, true},
		{"thousand days", 1000 * Day, 10, false, 100 * Day, true},
		{"zero span", 0, 10, false, 0, false},
		{"zero budget", Second, 0, false, 0, false},
		{"negative budget", Second, -3, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PerPoint(tt.total, tt.max, tt.subDaily)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("PerPoint(%d, %d, %v) = %d, %v, want %d, %v",
					tt.total, tt.max, tt.subDaily, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPerPointBudget(t *testing.T) {
	totals := []uint64{1, 999, Second + 7, 59 * Second, 3 * Hour, 2 * Day, 45 * Day, 3650 * Day, 1 << 62}
	for _, total := range totals {
		for _, max := range []int{1, 3, 7, 10, 50} {
			p, ok := PerPoint(total, max, false)
			if !ok {
				t.Fatalf("PerPoint(%d, %d) reported no period", total, max)
			}
			if n := total / p; n > uint64(max) {
				t.Errorf("PerPoint(%d, %d) = %d gives %d points", total, max, p, n)
			}
		}
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		span   int64
		max    int
		want   int64
		wantOK bool
	}{
		{101, 10, 10, true},
		{100, 10, 10, true},
		{101, 1, 100, true},
		{21, 10, 2, true},
		{25, 10, 5, true},
		{7, 10, 1, true},
		{0, 3, 1, true},
		{1<<63 - 1, 1, 5_000_000_000_000_000_000, true},
		{-1, 10, 0, false},
		{10, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := NiceStep(tt.span, tt.max)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("NiceStep(%d, %d) = %d, %v, want %d, %v", tt.span, tt.max, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNiceTickerLevels(t *testing.T) {
	ticker := niceTicker{span: 100}
	ticks := ticker.TicksAtLevel(3).([]int64)
	if len(ticks) != 11 || ticks[10] != 100 {
		t.Errorf("TicksAtLevel(3) = %v, want 0..100 by 10", ticks)
	}
	if got := ticker.CountTicks(3); got != 10 {
		t.Errorf("CountTicks(3) = %d, want 10", got)
	}
}
