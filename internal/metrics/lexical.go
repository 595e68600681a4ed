package metrics

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyInput is returned by ratio metrics when the text tokenizes to
// nothing. Callers must guard rather than divide by zero.
var ErrEmptyInput = errors.New("empty input: no tokens")

// Tokenize splits cleaned text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// WordCount computes the occurrence count of each token in the cleaned text.
func WordCount(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range Tokenize(text) {
		counts[w]++
	}
	return counts
}

// UniqueWords returns the distinct tokens of the cleaned text, sorted for
// stable output.
func UniqueWords(text string) []string {
	seen := make(map[string]struct{})
	for _, w := range Tokenize(text) {
		seen[w] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// RepetitionRatio is the percentage of tokens that are repeats of an earlier
// occurrence: sum(count-1) over words with count > 1, divided by the total
// token count, times 100.
func RepetitionRatio(text string) (float64, error) {
	words := Tokenize(text)
	if len(words) == 0 {
		return 0, ErrEmptyInput
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	repeated := 0
	for _, c := range counts {
		if c > 1 {
			repeated += c - 1
		}
	}
	return float64(repeated) / float64(len(words)) * 100, nil
}
