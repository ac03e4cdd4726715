package sink

import (
	"encoding/json"

	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
)

type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
}

// WithIndent pretty-prints the output.
func WithIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// RenderJSON serializes the layout.
func RenderJSON(l axis.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if r.indent {
		return json.MarshalIndent(l, "", "  ")
	}
	return json.Marshal(l)
}
