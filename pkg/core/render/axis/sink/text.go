package sink

import (
	"strings"

	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
)

const (
	rulerLine = '─'
	rulerTick = '┬'

	maxTextColumns = 4096
)

// RenderText draws the axis as a ruler of the given column width with
// labels on the line below. Labels that would overlap the previous one are
// dropped. The width is clamped to [2, 4096].
func RenderText(l axis.Layout, columns int) string {
	columns = min(max(columns, 2), maxTextColumns)
	ruler := []rune(strings.Repeat(string(rulerLine), columns))
	labels := []rune(strings.Repeat(" ", columns))

	next := 0
	for _, t := range l.Ticks {
		col := column(l, t.Pos, columns)
		if col < 0 || col >= columns {
			continue
		}
		ruler[col] = rulerTick

		label := []rune(t.Label)
		if col < next || col+len(label) > columns {
			continue
		}
		copy(labels[col:], label)
		next = col + len(label) + 1
	}
	return string(ruler) + "\n" + strings.TrimRight(string(labels), " ")
}

// column scales a pixel position onto [0, columns).
func column(l axis.Layout, pos, columns int) int {
	w := l.Hi - l.Lo
	if w == 0 {
		return 0
	}
	return (pos - l.Lo) * (columns - 1) / w
}
