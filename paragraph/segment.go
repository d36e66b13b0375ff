package paragraph

import (
	"iter"
	"slices"
	"strings"

	"varfmt/reflow"
)

// DefaultDepth allows prefix detection on the lines and one more time on the
// lines with prefix removed, which covers nested quotations separated by
// quoted empty lines ("> > text", "> >", "> > text"). Past the limit only
// spaces following accumulated prefix are still detected.
const DefaultDepth = 2

// Segmenter splits input into blocks. Every empty line becomes an empty
// block of its own, every run of non-empty lines is stripped of the common
// prefix and tokenized by whitespace.
type Segmenter struct {
	// Width is number of columns available for output including prefix.
	Width int
	// Depth limits number of prefix detection passes for a single run.
	Depth int
}

// New returns Segmenter for the given width using DefaultDepth.
func New(width int) *Segmenter {
	return &Segmenter{Width: width, Depth: DefaultDepth}
}

// Blocks yields blocks as soon as each run of lines is complete, so input
// does not have to be read completely up front.
func (s *Segmenter) Blocks(lines iter.Seq[string]) iter.Seq[reflow.Block] {
	return func(yield func(reflow.Block) bool) {
		var run []string
		for line := range lines {
			if len(line) > 0 {
				run = append(run, line)
				continue
			}
			if len(run) > 0 {
				if !s.split(run, s.Width, "", 0, yield) {
					return
				}
				run = nil
			}
			if !yield(reflow.Block{Width: s.Width}) {
				return
			}
		}
		if len(run) > 0 {
			s.split(run, s.Width, "", 0, yield)
		}
	}
}

// Split is a convenience wrapper over Blocks for input already in memory.
func (s *Segmenter) Split(lines []string) []reflow.Block {
	return slices.Collect(s.Blocks(slices.Values(lines)))
}

// split handles single run of non-empty lines. When the run has a common
// prefix it is removed and the remaining lines are segmented again, empty
// remainders separate nested runs and are preserved with accumulated prefix.
func (s *Segmenter) split(run []string, width int, prefix string, depth int, yield func(reflow.Block) bool) bool {
	var p string
	switch {
	case depth < s.Depth:
		p = CommonPrefix(run)
	case len(prefix) > 0:
		// out of passes, spaces separating nested prefix from text still
		// belong to the prefix
		p = leadingSpaces(CommonPrefix(run))
	}
	if len(p) == 0 {
		return yield(reflow.Block{Tokens: tokenize(run), Width: width, Prefix: prefix})
	}

	// markers are single byte characters, byte length is the width
	width -= len(p)
	prefix += p

	var sub []string
	for _, line := range run {
		if rest := line[len(p):]; len(rest) > 0 {
			sub = append(sub, rest)
			continue
		}
		if len(sub) > 0 {
			if !s.split(sub, width, prefix, depth+1, yield) {
				return false
			}
			sub = nil
		}
		if !yield(reflow.Block{Width: width, Prefix: prefix}) {
			return false
		}
	}
	if len(sub) > 0 {
		return s.split(sub, width, prefix, depth+1, yield)
	}
	return true
}

func leadingSpaces(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " "))]
}

func tokenize(lines []string) []string {
	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, strings.Fields(line)...)
	}
	return tokens
}
