// Package reflow breaks paragraphs into lines of balanced length.
//
// Layout of a block is done in three passes: greedy packing establishes the
// smallest possible number of lines, dynamic programming finds the breaking
// with the smallest variance of line lengths among breakings with that number
// of lines and finally the last line may be taken out of balancing so short
// trailing line does not distort the rest of the paragraph.
package reflow

import (
	"unicode/utf8"
)

// Block is a single paragraph ready for layout. Block without tokens
// represents preserved blank line.
type Block struct {
	Tokens []string
	// Width is number of columns available for text, prefix is not included.
	Width  int
	Prefix string
}

// Blank reports whether block has nothing to lay out.
func (b Block) Blank() bool {
	return len(b.Tokens) == 0
}

// Validate makes sure every token fits into block width.
func (b Block) Validate() error {
	for _, tok := range b.Tokens {
		if Len(tok) > b.Width {
			return &TokenTooLongError{Token: tok, Width: b.Width}
		}
	}
	return nil
}

// Len returns number of columns s occupies. Every rune is a single column,
// display width is not taken into account.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
