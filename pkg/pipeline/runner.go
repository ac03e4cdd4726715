package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/timeaxis/pkg/cache"
	"github.com/matzehuels/timeaxis/pkg/core/coord"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
	"github.com/matzehuels/timeaxis/pkg/errors"
	"github.com/matzehuels/timeaxis/pkg/observability"
)

// maxSteps bounds the step count accepted by Step.
const maxSteps = 100_000

// Runner executes the pipeline with caching.
//
// The Runner holds no per-request state, so multiple goroutines can share
// one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer uses the DefaultKeyer and a nil
// cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the layout and render stages with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	l, layoutHit, err := r.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.TickCount = len(l.Ticks)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"kind", opts.Kind,
		"ticks", len(l.Ticks),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the tick layout and reports whether it came
// from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (axis.Layout, bool, error) {
	if err := r.prepare(&opts); err != nil {
		return axis.Layout{}, false, err
	}
	m, err := newModel(&opts)
	if err != nil {
		return axis.Layout{}, false, err
	}

	// Keyed on the normalized bounds so different spellings share an entry.
	key := r.Keyer.LayoutKey(opts.LayoutKeyOpts(m.bounds()))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached axis.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	l := m.layout(opts.MaxPoints, pixelRange(opts))
	elapsed := time.Since(start)
	observability.Axis().OnKeyPoints(ctx, opts.Kind, opts.MaxPoints, len(l.Ticks), elapsed)
	opts.Logger.Debug("computed key points", "kind", opts.Kind, "max_points", opts.MaxPoints, "count", len(l.Ticks))

	if data, err := json.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache layout", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// Layout is LayoutWithCacheInfo without the cache hit info.
func (r *Runner) Layout(ctx context.Context, opts Options) (axis.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, opts)
	return l, err
}

// RenderWithCacheInfo renders l in every requested format and reports
// whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l axis.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, false, err
	}

	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Axis().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderLayout(ctx, l, opts)
	observability.Axis().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache artifact", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// Map projects values onto the pixel range of opts. Values are parsed like
// the bounds of the axis kind.
func (r *Runner) Map(opts Options, values []string) ([]int, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	m, err := newModel(&opts)
	if err != nil {
		return nil, err
	}
	px := pixelRange(opts)
	out := make([]int, len(values))
	for i, v := range values {
		if out[i], err = m.mapValue(v, px); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Step moves value n units forward, or backward when n is negative. Only
// the date, monthly and yearly kinds have a unit step.
func (r *Runner) Step(opts Options, value string, n int) (string, error) {
	if err := r.prepare(&opts); err != nil {
		return "", err
	}
	if n > maxSteps || n < -maxSteps {
		return "", errors.New(errors.ErrCodeInvalidInput, "step count must be within ±%d, got %d", maxSteps, n)
	}
	m, err := newModel(&opts)
	if err != nil {
		return "", err
	}
	return m.step(value, n)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// prepare validates opts and applies the runner's logger.
func (r *Runner) prepare(opts *Options) error {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func pixelRange(opts Options) coord.PixelRange {
	return coord.PixelRange{Lo: opts.Pixels[0], Hi: opts.Pixels[1]}
}
