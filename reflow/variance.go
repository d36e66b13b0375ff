package reflow

import (
	"math"
)

// State describes the best known breaking of tokens[:i] into exactly
// lines[i] lines. Sum and SumSquares accumulate line lengths (not token
// lengths) so variance can be recomputed in constant time when one more line
// is appended.
type State struct {
	// Pred is the index of the first token on the last line.
	Pred       int
	Variance   float64
	SumSquares int
	Sum        int
}

// Mean returns average line length for breaking with n lines.
func (s State) Mean(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(s.Sum) / float64(n)
}

// extend returns state for the breaking with one more line of length x
// appended, n is the resulting number of lines.
func (s State) extend(x, n int) State {
	next := State{
		SumSquares: s.SumSquares + x*x,
		Sum:        s.Sum + x,
	}
	// Var[X] = E[X^2] - E[X]^2
	mean := next.Mean(n)
	next.Variance = float64(next.SumSquares)/float64(n) - mean*mean
	return next
}

// Optimize computes minimum variance breaking for every prefix of tokens
// constrained to use exactly lines[i] lines (see CountLines). Breaking for
// tokens[:i] can be restored by following Pred from states[i] down to 0.
//
// Candidates are compared strictly, last line start is scanned from i-1
// down, so among breakings with equal variance the one with the shortest
// last line wins.
func Optimize(tokens []string, lines []int, width int) []State {
	states := make([]State, len(tokens)+1)

	for i := 1; i <= len(tokens); i++ {
		best := State{Pred: -1, Variance: math.Inf(1)}
		x := 0
		for j := i - 1; j >= 0; j-- {
			// add 1 for space, if the current line isn't empty
			w := x + Len(tokens[j])
			if x != 0 {
				w++
			}
			if w > width {
				break
			}
			x = w

			n := lines[j] + 1
			if n != lines[i] {
				continue
			}
			if next := states[j].extend(x, n); next.Variance < best.Variance {
				next.Pred = j
				best = next
			}
		}
		// greedy start of the last line always qualifies, so best is set
		states[i] = best
	}
	return states
}
