package reflow

import (
	"math"
)

// Balance controls how the last line of a paragraph is treated.
type Balance struct {
	// ShortParagraph is the largest line count for which the whole paragraph
	// is balanced including its last line.
	ShortParagraph int
	// TailRatio scales mean line length of the balanced head; candidate last
	// lines not longer than that are preferred.
	TailRatio float64
}

// DefaultBalance produces visually pleasing results on ordinary prose.
var DefaultBalance = Balance{
	ShortParagraph: 3,
	TailRatio:      1,
}

// Cut returns index of the first token of the last line which is excluded
// from balancing. When nothing is excluded len(tokens) is returned.
//
// Every literal tail which fits into a single line and leaves the head with
// exactly one line less than the minimum is considered. Tails not longer than
// the (scaled) average head line are preferred, within each group head with
// the smallest variance wins.
func (bal Balance) Cut(tokens []string, lines []int, states []State, width int) int {
	total := len(tokens)
	if lines[total] <= bal.ShortParagraph {
		return total
	}

	var (
		cut  [2]int
		best = [2]float64{math.Inf(1), math.Inf(1)}
		x    int
	)
	for i := total - 1; i >= 0; i-- {
		if x != 0 {
			x++
		}
		x += Len(tokens[i])
		if x > width {
			break
		}
		if lines[i]+1 != lines[total] {
			continue
		}

		b := 0
		if float64(x) <= bal.TailRatio*states[i].Mean(lines[i]) {
			b = 1
		}
		if states[i].Variance < best[b] {
			best[b], cut[b] = states[i].Variance, i
		}
	}

	// use shorter last line if it exists, otherwise default to longer
	if !math.IsInf(best[1], 1) {
		return cut[1]
	}
	return cut[0]
}
