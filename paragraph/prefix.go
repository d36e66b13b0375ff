// Package paragraph splits raw text lines into blocks suitable for reflow.
package paragraph

import (
	"strings"
)

// Markers lists characters allowed to form a block prefix: quotation and
// comment markers, bullets and indentation.
const Markers = ` >:-*|#$%'"`

func isMarker(c byte) bool {
	return strings.IndexByte(Markers, c) >= 0
}

// CommonPrefix returns the longest string of marker characters every line
// starts with. Scanning stops at the first position where lines disagree,
// any line ends or character is not a marker.
func CommonPrefix(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	first := lines[0]
	n := 0
scan:
	for ; n < len(first); n++ {
		c := first[n]
		if !isMarker(c) {
			break
		}
		for _, line := range lines[1:] {
			if n >= len(line) || line[n] != c {
				break scan
			}
		}
	}
	return first[:n]
}
