package coord

import (
	"testing"
	"time"
)

func assertTimes(t *testing.T, got []DateTime, want ...time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if !got[i].Time().Equal(want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDateTimeCoordKeyPoints(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("one day", func(t *testing.T) {
		c := NewDateTimeCoord(NewDateTime(base), NewDateTime(base.Add(24*time.Hour)))
		var want []time.Time
		for h := 0; h < 24; h += 5 {
			want = append(want, base.Add(time.Duration(h)*time.Hour))
		}
		assertTimes(t, c.KeyPoints(10), want...)
	})

	t.Run("aligned to period", func(t *testing.T) {
		begin := base.Add(10*time.Hour + 17*time.Minute)
		c := NewDateTimeCoord(NewDateTime(begin), NewDateTime(begin.Add(time.Hour)))
		var want []time.Time
		for m := 20; m <= 70; m += 10 {
			want = append(want, base.Add(10*time.Hour+time.Duration(m)*time.Minute))
		}
		assertTimes(t, c.KeyPoints(6), want...)
	})

	t.Run("sub-second", func(t *testing.T) {
		begin := base.Add(250 * time.Millisecond)
		c := NewDateTimeCoord(NewDateTime(begin), NewDateTime(begin.Add(time.Second)))
		var want []time.Time
		for ms := 300; ms <= 1200; ms += 100 {
			want = append(want, base.Add(time.Duration(ms)*time.Millisecond))
		}
		assertTimes(t, c.KeyPoints(10), want...)
	})

	t.Run("wall clock in zone", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		begin := time.Date(2020, 1, 1, 10, 17, 0, 0, ist)
		c := NewDateTimeCoord(NewDateTime(begin), NewDateTime(begin.Add(time.Hour)))
		got := c.KeyPoints(6)
		if len(got) == 0 {
			t.Fatal("no key points")
		}
		if first := got[0].Time(); first.Hour() != 10 || first.Minute() != 20 {
			t.Errorf("first point = %v, want 10:20 local", first)
		}
	})

	t.Run("falls back to weeks", func(t *testing.T) {
		c := NewDateTimeCoord(at(2020, 1, 1, 12, 0), at(2020, 3, 1, 0, 0))
		got := c.KeyPoints(10)
		if len(got) != 9 {
			t.Fatalf("got %d points, want 9", len(got))
		}
		if !got[0].Equal(at(2020, 1, 2, 0, 0)) || !got[8].Equal(at(2020, 2, 27, 0, 0)) {
			t.Errorf("points = %v", got)
		}
	})

	t.Run("fallback excludes end", func(t *testing.T) {
		c := NewDateTimeCoord(at(2020, 1, 1, 12, 0), at(2020, 1, 5, 0, 0))
		assertTimes(t, c.KeyPoints(3),
			at(2020, 1, 2, 0, 0).Time(), at(2020, 1, 3, 0, 0).Time(), at(2020, 1, 4, 0, 0).Time())
	})

	t.Run("empty intervals", func(t *testing.T) {
		now := NewDateTime(base)
		if got := NewDateTimeCoord(now, now).KeyPoints(10); got != nil {
			t.Errorf("zero length = %v, want nil", got)
		}
		if got := NewDateTimeCoord(now.Add(time.Hour), now).KeyPoints(10); got != nil {
			t.Errorf("inverted = %v, want nil", got)
		}
		if got := NewDateTimeCoord(now, now.Add(time.Hour)).KeyPoints(0); got != nil {
			t.Errorf("zero budget = %v, want nil", got)
		}
	})
}

func TestDateTimeCoordKeyPointsInRange(t *testing.T) {
	begin := time.Date(2021, 7, 3, 13, 47, 12, 123456789, time.UTC)
	spans := []time.Duration{
		time.Microsecond, 3 * time.Second, 7 * time.Minute, 5 * time.Hour,
		26 * time.Hour, 9 * 24 * time.Hour, 400 * 24 * time.Hour,
	}
	for _, span := range spans {
		end := begin.Add(span)
		c := NewDateTimeCoord(NewDateTime(begin), NewDateTime(end))
		for _, max := range []int{1, 4, 10, 25} {
			got := c.KeyPoints(max)
			if len(got) > 2*max+1 {
				t.Errorf("span %v max %d: %d points", span, max, len(got))
			}
			for i, p := range got {
				if p.Time().Before(begin) || !p.Time().Before(end) {
					t.Errorf("span %v max %d: point %v outside [begin, end)", span, max, p)
				}
				if i > 0 && !got[i-1].Before(p) {
					t.Errorf("span %v max %d: not increasing at %d", span, max, i)
				}
			}
		}
	}
}

func TestDateTimeDateRounding(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantFloor Date
		wantCeil  Date
	}{
		{"midnight", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), day(2020, 1, 1), day(2020, 1, 1)},
		{"afternoon", time.Date(2020, 1, 1, 15, 0, 0, 0, time.UTC), day(2020, 1, 1), day(2020, 1, 2)},
		{"one nanosecond", time.Date(2020, 12, 31, 0, 0, 0, 1, time.UTC), day(2020, 12, 31), day(2021, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := NewDateTime(tt.in)
			if got := dt.DateFloor(); !got.Equal(tt.wantFloor) {
				t.Errorf("DateFloor() = %v, want %v", got, tt.wantFloor)
			}
			if got := dt.DateCeil(); !got.Equal(tt.wantCeil) {
				t.Errorf("DateCeil() = %v, want %v", got, tt.wantCeil)
			}
		})
	}
}
