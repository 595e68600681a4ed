package normalize

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options selects which cleaning variant Clean produces. The zero value is
// the fully-stripped variant used by the lexical extractors.
type Options struct {
	// PreservePunctuation keeps sentence-ending punctuation (. ! ?) so that
	// sentence-aware metrics still see boundaries. All other punctuation is
	// removed either way.
	PreservePunctuation bool
	// Stop filters tokens after punctuation stripping. A zero StopWords
	// performs no filtering.
	Stop StopWords
}

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean lowercases the text, strips punctuation, folds combining marks, and
// optionally removes stop words. Tokens are rejoined with single spaces, so
// the output is suitable for whitespace tokenization.
func Clean(text string, opts Options) string {
	folded, _, err := transform.String(foldTransform, text)
	if err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r):
			b.WriteRune(unicode.ToLower(r))
		case opts.PreservePunctuation && (r == '.' || r == '!' || r == '?'):
			b.WriteRune(r)
		}
		// Everything else is dropped outright, not replaced by a space, so
		// "don't" becomes "dont" rather than two tokens.
	}

	words := strings.Fields(b.String())
	words = opts.Stop.Filter(words)
	return strings.Join(words, " ")
}

// StopWords is an explicit stop-word filter threaded through every Clean
// call. It is either backed by a loaded file set or by the built-in
// per-language list; the zero value filters nothing.
type StopWords struct {
	set  map[string]struct{}
	lang string
}

// Filter returns words with stop words removed. Sentence punctuation is
// trimmed before the membership check, so tokens like "stop." from the
// punctuation-preserving variant are filtered the same as bare ones. The
// input slice is not modified.
func (s StopWords) Filter(words []string) []string {
	if len(s.set) == 0 && s.lang == "" {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		base := strings.TrimRight(w, ".!?")
		if base != "" && s.contains(base) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Contains reports whether the word is a stop word.
func (s StopWords) Contains(word string) bool {
	return s.contains(strings.ToLower(word))
}

func (s StopWords) contains(word string) bool {
	if _, ok := s.set[word]; ok {
		return true
	}
	if s.lang != "" {
		// The language list swallows stop words, so an empty result means
		// the token was one.
		return strings.TrimSpace(stopwords.CleanString(word, s.lang, false)) == ""
	}
	return false
}

// Len returns the number of explicitly loaded stop words. Language-backed
// sets report zero.
func (s StopWords) Len() int { return len(s.set) }

// NewStopWords builds a set from the given words. Words are lowercased.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return StopWords{set: set}
}

// LanguageStopWords returns a set backed by the built-in list for an ISO 639-1
// language code, e.g. "en".
func LanguageStopWords(code string) StopWords {
	return StopWords{lang: code}
}
