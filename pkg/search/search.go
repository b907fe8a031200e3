// Package search finds the occurrences of a word in a text.
package search

import "strings"

// Find returns the byte offsets of every non-overlapping occurrence of word in
// text, in increasing order. The scan resumes right after each match.
// An empty word never matches.
func Find(word, text string) []int {
	if word == "" {
		return nil
	}

	var positions []int
	for offset := 0; offset <= len(text)-len(word); {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			break
		}
		positions = append(positions, offset+i)
		offset += i + len(word)
	}
	return positions
}
