// Package axis lays out the key points of a coordinate along a pixel range.
//
// A [Layout] is what rendering backends consume: for every key point its
// pixel position and a human-readable label. Backends never see calendar
// values, only positions and text.
//
//	c := coord.NewDateTimeCoord(begin, end)
//	l := axis.Build(c, 10, coord.PixelRange{Lo: 0, Hi: 800}, axis.TimeLabels[coord.DateTime](""))
//	svg := sink.RenderSVG(l)
package axis

import (
	"fmt"

	"github.com/matzehuels/timeaxis/pkg/core/coord"
)

// Tick is one key point projected onto the pixel range.
type Tick struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Pos   int    `json:"pos"`
}

// Layout is an axis ready to draw.
type Layout struct {
	Kind      string `json:"kind,omitempty"`
	Begin     string `json:"begin"`
	End       string `json:"end"`
	Lo        int    `json:"lo"`
	Hi        int    `json:"hi"`
	MaxPoints int    `json:"max_points"`
	Ticks     []Tick `json:"ticks"`
}

// Labeler returns one label per point. It sees every point at once so it
// can pick a format from their spacing.
type Labeler[T any] func(points []T) []string

// Build computes the key points of r and projects them onto px. A nil
// labeler leaves labels empty.
func Build[T fmt.Stringer](r coord.Ranged[T], maxPoints int, px coord.PixelRange, label Labeler[T]) Layout {
	begin, end := r.Range()
	l := Layout{
		Begin:     begin.String(),
		End:       end.String(),
		Lo:        px.Lo,
		Hi:        px.Hi,
		MaxPoints: maxPoints,
		Ticks:     []Tick{},
	}

	points := r.KeyPoints(maxPoints)
	var labels []string
	if label != nil {
		labels = label(points)
	}
	for i, p := range points {
		t := Tick{Value: p.String(), Pos: r.Map(p, px)}
		if i < len(labels) {
			t.Label = labels[i]
		}
		l.Ticks = append(l.Ticks, t)
	}
	return l
}

// Width returns the pixel distance covered by the layout.
func (l Layout) Width() int {
	if l.Hi < l.Lo {
		return l.Lo - l.Hi
	}
	return l.Hi - l.Lo
}
