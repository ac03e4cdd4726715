package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/timeaxis/pkg/cache"
	"github.com/matzehuels/timeaxis/pkg/errors"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRunnerLayout(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	l, err := r.Layout(context.Background(), Options{
		Kind:      KindDateTime,
		Begin:     "2021-01-01T00:00:00",
		End:       "2021-01-02T00:00:00",
		MaxPoints: 5,
	})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	want := []struct {
		value, label string
		pos          int
	}{
		{"2021-01-01T00:00:00Z", "00:00", 0},
		{"2021-01-01T08:00:00Z", "08:00", 266},
		{"2021-01-01T16:00:00Z", "16:00", 533},
	}
	if len(l.Ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d: %+v", len(l.Ticks), len(want), l.Ticks)
	}
	for i, w := range want {
		got := l.Ticks[i]
		if got.Value != w.value || got.Label != w.label || got.Pos != w.pos {
			t.Errorf("Ticks[%d] = %+v, want {%s %s %d}", i, got, w.value, w.label, w.pos)
		}
	}
	if l.Kind != KindDateTime {
		t.Errorf("Kind = %q, want %q", l.Kind, KindDateTime)
	}
}

func TestRunnerLayoutMonthlyDateTime(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	l, err := r.Layout(context.Background(), Options{
		Kind:  KindMonthly,
		Begin: "2021-01-15T00:00:00",
		End:   "2021-06-15T00:00:00",
	})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(l.Ticks) != 5 {
		t.Fatalf("got %d ticks, want 5: %+v", len(l.Ticks), l.Ticks)
	}
	if got := l.Ticks[0]; got.Value != "2021-02-01T00:00:00Z" || got.Label != "Feb 2021" {
		t.Errorf("Ticks[0] = %+v", got)
	}
}

func TestRunnerLayoutBadBounds(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Layout(context.Background(), Options{Kind: KindDate, Begin: "2021-01-01", End: "tomorrow"})
	if !errors.Is(err, errors.ErrCodeInvalidTime) {
		t.Errorf("Layout() error = %v, want INVALID_TIME", err)
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{
		Kind:    KindDateTime,
		Begin:   "2021-01-01",
		End:     "2021-01-08",
		Formats: []string{FormatJSON, FormatSVG, FormatText},
	}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss, got %+v", first.CacheInfo)
	}
	for _, f := range opts.Formats {
		if len(first.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}

	// Same axis, different spelling of the bounds.
	opts.Begin, opts.End = "2021-01-01T00:00:00Z", "2021-01-08T00:00:00"
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit, got %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerExecutePNG(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Kind:    KindDuration,
		Begin:   "0s",
		End:     "1s",
		Formats: []string{FormatPNG},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !bytes.HasPrefix(res.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
}

func TestRunnerExecuteRejectsOversizedOutput(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"pixel range", func(o *Options) { o.Pixels = [2]int{0, 1 << 61} }},
		{"height", func(o *Options) { o.Height = 1 << 40 }},
		{"columns", func(o *Options) { o.Columns = 1 << 40; o.Formats = []string{FormatText} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				Kind:    KindDuration,
				Begin:   "0s",
				End:     "1s",
				Formats: []string{FormatPNG},
			}
			tt.modify(&opts)
			if _, err := r.Execute(context.Background(), opts); err == nil {
				t.Error("Execute() succeeded, want a validation error")
			}
		})
	}
}

func TestRunnerMap(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	opts := Options{Kind: KindDuration, Begin: "0s", End: "1s", Pixels: [2]int{0, 1000}}

	got, err := r.Map(opts, []string{"0", "500ms", "1s", "-1s"})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	// -1s extrapolates and truncates toward zero.
	want := []int{0, 500, 1000, -999}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Map()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := r.Map(opts, []string{"later"}); !errors.Is(err, errors.ErrCodeInvalidTime) {
		t.Errorf("Map(bad value) error = %v, want INVALID_TIME", err)
	}
}

func TestRunnerStep(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	tests := []struct {
		kind  string
		value string
		n     int
		want  string
	}{
		{KindDate, "2021-01-31", 1, "2021-02-01"},
		{KindDate, "2021-03-01", -1, "2021-02-28"},
		{KindMonthly, "2021-01-31", 1, "2021-02-28"},
		{KindMonthly, "2021-03-31", -13, "2020-02-28"},
		{KindYearly, "2021-01-01", -2, "2019-01-01"},
		{KindYearly, "2021-06-15", 0, "2021-06-15"},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.value, func(t *testing.T) {
			opts := Options{Kind: tt.kind, Begin: "2020-01-01", End: "2022-01-01"}
			got, err := r.Step(opts, tt.value, tt.n)
			if err != nil {
				t.Fatalf("Step() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Step(%s, %d) = %s, want %s", tt.value, tt.n, got, tt.want)
			}
		})
	}
}

func TestRunnerStepRejectsContinuousKinds(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	for _, kind := range []string{KindDateTime, KindDuration} {
		opts := Options{Kind: kind, Begin: "2021-01-01", End: "2021-01-02"}
		if kind == KindDuration {
			opts.Begin, opts.End = "0s", "1s"
		}
		_, err := r.Step(opts, opts.Begin, 1)
		if !errors.Is(err, errors.ErrCodeInvalidKind) {
			t.Errorf("Step(%s) error = %v, want INVALID_KIND", kind, err)
		}
	}
}

func TestRenderLayoutText(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Kind:    KindDate,
		Begin:   "2021-01-01",
		End:     "2021-01-05",
		Formats: []string{FormatText},
		Columns: 41,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(res.Artifacts[FormatText]), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 41 {
		t.Errorf("text artifact = %q", res.Artifacts[FormatText])
	}
}
