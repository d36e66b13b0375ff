package reflow

// CountLines computes minimal number of lines for every prefix of tokens
// using forward greedy packing: lines[i] is the number of lines required to
// place tokens[:i] into width columns, so lines[0] is always 0 and every next
// value is either the same or one more.
//
// Greedy packing gives the smallest line count, not the best looking
// paragraph. Result is only used to constrain Optimize.
func CountLines(tokens []string, width int) []int {
	lines := make([]int, len(tokens)+1)

	count, used := 0, 0
	for i, tok := range tokens {
		n := Len(tok)
		if used == 0 || used+1+n > width {
			// break onto a new line
			count++
			used = n
		} else {
			used += 1 + n
		}
		lines[i+1] = count
	}
	return lines
}
