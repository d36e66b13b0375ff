package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented human readable dumps.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock outputs quoted value, so leading and trailing spaces are visible.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

// Ints outputs numbers in a single row, wrapping every perRow values.
func (tw TreeWriter) Ints(depth int, label string, values []int, perRow int) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(":")
	if perRow <= 0 {
		perRow = len(values)
	}
	for i, v := range values {
		if i > 0 && i%perRow == 0 {
			tw.w.WriteByte('\n')
			tw.indent(depth + 1)
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(strconv.Itoa(v))
	}
	tw.w.WriteByte('\n')
}
