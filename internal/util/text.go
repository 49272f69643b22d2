// Package util holds small text and terminal helpers shared by the
// rendering code.
package util

import (
	"strings"
	"unicode/utf8"
)

// DisplayWidth is the column count a string occupies.
func DisplayWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// WrapText splits text into lines no wider than width, breaking at spaces.
// A word longer than width stays whole on its own line. Width 0 or less
// returns the text unchanged.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	lines := make([]string, 0, 1)
	current := words[0]
	for _, word := range words[1:] {
		if DisplayWidth(current)+1+DisplayWidth(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
