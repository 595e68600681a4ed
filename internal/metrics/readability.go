package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Readability holds standard readability indices computed over
// sentence-preserving text.
type Readability struct {
	FleschReadingEase    float64
	FleschKincaidGrade   float64
	AutomatedReadability float64
}

// ComputeReadability derives Flesch reading ease, Flesch-Kincaid grade level,
// and the automated readability index. The input must be the minimally
// cleaned variant so that . ! ? still mark sentence boundaries.
func ComputeReadability(text string) (Readability, error) {
	words := Tokenize(stripSentencePunct(text))
	if len(words) == 0 {
		return Readability{}, ErrEmptyInput
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	chars := 0
	for _, w := range words {
		syllables += countSyllables(w)
		chars += utf8.RuneCountInString(w)
	}

	wps := float64(len(words)) / float64(sentences)
	spw := float64(syllables) / float64(len(words))
	cpw := float64(chars) / float64(len(words))

	return Readability{
		FleschReadingEase:    206.835 - 1.015*wps - 84.6*spw,
		FleschKincaidGrade:   0.39*wps + 11.8*spw - 15.59,
		AutomatedReadability: 4.71*cpw + 0.5*wps - 21.43,
	}, nil
}

func stripSentencePunct(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '!' || r == '?' {
			return -1
		}
		return r
	}, text)
}

func countSentences(text string) int {
	n := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			// A run like "?!" or "..." ends one sentence.
			if !inRun {
				n++
			}
			inRun = true
			continue
		}
		inRun = false
	}
	return n
}

// countSyllables estimates syllables by counting vowel groups, discounting a
// trailing silent e and flooring at one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	groups := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
