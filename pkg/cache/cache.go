// Package cache stores rendered axis artifacts between runs.
//
// Three backends implement [Cache]:
//   - [FileCache] for the CLI, one JSON file per entry under the XDG cache dir
//   - [RedisCache] for the HTTP server, shared between instances
//   - [NullCache] when caching is disabled
//
// Keys are produced by a [Keyer] from the normalized axis options, so two
// requests that describe the same axis share an entry regardless of how
// their bounds were spelled.
package cache

import (
	"context"
	"time"
)

// Entry lifetimes.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Keys
// =============================================================================

// LayoutKeyOpts identifies a tick layout.
type LayoutKeyOpts struct {
	Kind        string `json:"kind"`
	Begin       string `json:"begin"`
	End         string `json:"end"`
	Timezone    string `json:"timezone"`
	MaxPoints   int    `json:"max_points"`
	PixelLo     int    `json:"pixel_lo"`
	PixelHi     int    `json:"pixel_hi"`
	LabelFormat string `json:"label_format,omitempty"`
}

// ArtifactKeyOpts identifies one rendering of a layout.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Color   string `json:"color,omitempty"`
	Height  int    `json:"height,omitempty"`
	Columns int    `json:"columns,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key of a tick layout.
	LayoutKey(opts LayoutKeyOpts) string

	// ArtifactKey returns the key of a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
