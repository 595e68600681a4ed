// Package rhyme implements rhyme lookup against a CMU-style pronouncing
// dictionary and the corpus-relative rhyme density measure.
package rhyme

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathanwong05/NLP-Library/internal/metrics"
)

// Dictionary maps words to pronunciations and indexes them by rhyming part.
// The rhyming part of a pronunciation is everything from the last stressed
// vowel phone onward; two words rhyme when they share one.
type Dictionary struct {
	phones map[string][][]string // word -> pronunciations
	index  map[string][]string   // rhyming part -> words, in file order
}

// LoadDictionary reads a cmudict-format file: one "WORD  PH0 PH1 ..." entry
// per line, ";;;" comments, alternate pronunciations written as "WORD(1)".
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pronouncing dictionary %s: %w", path, err)
	}
	defer f.Close()
	d, err := ParseDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("parse pronouncing dictionary %s: %w", path, err)
	}
	return d, nil
}

// ParseDictionary reads cmudict-format entries from r.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		phones: make(map[string][][]string),
		index:  make(map[string][]string),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		word := strings.ToLower(fields[0])
		// Alternate pronunciations: "word(1)" -> "word"
		if i := strings.IndexByte(word, '('); i > 0 {
			word = word[:i]
		}
		pron := fields[1:]
		d.phones[word] = append(d.phones[word], pron)
		if part := rhymingPart(pron); part != "" {
			d.index[part] = append(d.index[part], word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int { return len(d.phones) }

// Rhymes returns every dictionary word sharing a rhyming part with word,
// excluding word itself. Unknown words rhyme with nothing.
func (d *Dictionary) Rhymes(word string) []string {
	word = strings.ToLower(word)
	var out []string
	seen := make(map[string]struct{})
	for _, pron := range d.phones[word] {
		part := rhymingPart(pron)
		if part == "" {
			continue
		}
		for _, w := range d.index[part] {
			if w == word {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// Density computes the corpus-relative rhyme density of the tokens: the union
// of every token's rhyme set is accumulated first, then the fraction of
// tokens found in that union is returned. A token therefore counts as rhyming
// if it rhymes with any word in the document, not with a specific partner;
// short repetitive texts score high by construction.
func (d *Dictionary) Density(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, metrics.ErrEmptyInput
	}
	rhymes := make(map[string]struct{})
	for _, tok := range tokens {
		for _, w := range d.Rhymes(strings.ToLower(tok)) {
			rhymes[w] = struct{}{}
		}
	}
	n := 0
	for _, tok := range tokens {
		if _, ok := rhymes[strings.ToLower(tok)]; ok {
			n++
		}
	}
	return float64(n) / float64(len(tokens)), nil
}

// rhymingPart returns the phone suffix starting at the last vowel carrying
// primary or secondary stress, matching the usual pronouncing-library
// definition. Stress digits are kept so AY1 and AY2 do not cross-rhyme.
func rhymingPart(pron []string) string {
	for i := len(pron) - 1; i >= 0; i-- {
		p := pron[i]
		if strings.HasSuffix(p, "1") || strings.HasSuffix(p, "2") {
			return strings.Join(pron[i:], " ")
		}
	}
	return ""
}
