package reflow

import (
	"varfmt/utils/debug"
)

// String returns a readable dump of the layout with all intermediate tables.
// It exists solely for manual inspection during debugging.
func (l *Layout) String() string {
	if l == nil {
		return "<nil Layout>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Block: tokens[%d] width[%d]", len(l.Block.Tokens), l.Block.Width)
	tw.TextBlock(1, "Prefix", l.Block.Prefix)
	if l.Block.Blank() {
		return tw.String()
	}

	tw.Ints(1, "Lines", l.Lines, 20)
	tw.Line(1, "States:")
	for i := 1; i < len(l.States); i++ {
		s := l.States[i]
		tw.Line(2, "[%d] %q pred[%d] var[%.4f] sum[%d] sum2[%d]", i, l.Block.Tokens[i-1], s.Pred, s.Variance, s.Sum, s.SumSquares)
	}
	tw.Line(1, "Cut: %d", l.Cut)
	tw.Line(1, "Text: %d lines", len(l.Text))
	for _, line := range l.Text {
		tw.TextBlock(2, "Line", line)
	}
	return tw.String()
}
