package period

import "github.com/aclements/go-moremath/scale"

// maxNiceLevel is the highest level whose step fits in an int64 (5e18).
const maxNiceLevel = 56

var niceMults = [3]int64{1, 2, 5}

// NiceStep returns the smallest step in the sequence 1, 2, 5, 10, 20, 50, ...
// for which span/step <= maxPoints. It reports false for a negative span or
// a non-positive budget.
func NiceStep(span int64, maxPoints int) (int64, bool) {
	if span < 0 || maxPoints <= 0 {
		return 0, false
	}
	opts := scale.TickOptions{Max: maxPoints, MinLevel: 0, MaxLevel: maxNiceLevel}
	level, ok := opts.FindLevel(niceTicker{span: span}, 0)
	if !ok {
		return 0, false
	}
	return niceStep(level), true
}

// niceTicker adapts a span to scale.Ticker: level l counts span/step(l).
type niceTicker struct {
	span int64
}

func (t niceTicker) CountTicks(level int) int {
	return int(t.span / niceStep(level))
}

func (t niceTicker) TicksAtLevel(level int) interface{} {
	step := niceStep(level)
	ticks := make([]int64, 0, t.span/step+1)
	for v := int64(0); ; v += step {
		ticks = append(ticks, v)
		if v > t.span-step {
			return ticks
		}
	}
}

func niceStep(level int) int64 {
	step := niceMults[level%3]
	for i := 0; i < level/3; i++ {
		step *= 10
	}
	return step
}
