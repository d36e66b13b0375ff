package reflow

import (
	"slices"
	"strings"
)

// Render produces final lines of the block. Tokens before cut are emitted
// following breaks recorded in states, the rest (if any) becomes the last
// line as is. Every line starts with block prefix.
func Render(b Block, states []State, cut int) []string {
	var out []string
	for i := cut; i > 0; i = states[i].Pred {
		out = append(out, b.Prefix+strings.Join(b.Tokens[states[i].Pred:i], " "))
	}
	slices.Reverse(out)

	if cut < len(b.Tokens) {
		out = append(out, b.Prefix+strings.Join(b.Tokens[cut:], " "))
	}
	return out
}
