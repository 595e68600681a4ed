package rhyme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathanwong05/NLP-Library/internal/metrics"
)

const testDict = `;;; test fixture, cmudict format
BE  B IY1
ME  M IY1
TREE  T R IY1
STONE  S T OW1 N
ALONE  AH0 L OW1 N
ORANGE  AO1 R AH0 N JH
READ  R EH1 D
READ(1)  R IY1 D
`

func mustDict(t *testing.T) *Dictionary {
	t.Helper()
	d, err := ParseDictionary(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return d
}

func TestParseDictionary(t *testing.T) {
	d := mustDict(t)
	if d.Len() != 7 {
		t.Fatalf("expected 7 words, got %d", d.Len())
	}
}

func TestRhymes(t *testing.T) {
	d := mustDict(t)
	got := d.Rhymes("be")
	want := map[string]bool{"me": true, "tree": true, "read": true}
	if len(got) != len(want) {
		t.Fatalf("rhymes(be) = %v, want %v", got, want)
	}
	for _, w := range got {
		if !want[w] {
			t.Fatalf("unexpected rhyme %q", w)
		}
	}
}

func TestRhymes_ExcludesSelfAndUnknown(t *testing.T) {
	d := mustDict(t)
	for _, w := range d.Rhymes("me") {
		if w == "me" {
			t.Fatalf("rhyme set must not contain the word itself")
		}
	}
	if got := d.Rhymes("xyzzy"); len(got) != 0 {
		t.Fatalf("unknown word should rhyme with nothing, got %v", got)
	}
}

func TestRhymes_AlternatePronunciations(t *testing.T) {
	d := mustDict(t)
	got := d.Rhymes("read")
	found := map[string]bool{}
	for _, w := range got {
		found[w] = true
	}
	// R EH1 D has no partners in the fixture; R IY1 D rhymes with the IY1 set.
	for _, w := range []string{"be", "me", "tree"} {
		if !found[w] {
			t.Fatalf("expected %q in rhymes(read), got %v", w, got)
		}
	}
}

func TestDensity_CorpusRelative(t *testing.T) {
	d := mustDict(t)
	// "be" and "me" rhyme with each other; each lands in the accumulated
	// union via the other's rhyme set. "orange" contributes nothing.
	density, err := d.Density([]string{"be", "me", "orange", "stone"})
	if err != nil {
		t.Fatalf("density: %v", err)
	}
	// stone's rhyme set pulls in alone, not itself; tokens in union: be, me.
	if want := 2.0 / 4.0; density != want {
		t.Fatalf("density = %v, want %v", density, want)
	}
}

func TestDensity_RepeatedTokenCountsEachTime(t *testing.T) {
	d := mustDict(t)
	density, err := d.Density([]string{"be", "be", "me"})
	if err != nil {
		t.Fatalf("density: %v", err)
	}
	if want := 3.0 / 3.0; density != want {
		t.Fatalf("density = %v, want %v", density, want)
	}
}

func TestDensity_Empty(t *testing.T) {
	d := mustDict(t)
	if _, err := d.Density(nil); !errors.Is(err, metrics.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.txt")
	if err := os.WriteFile(path, []byte(testDict), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Len() == 0 {
		t.Fatalf("expected entries")
	}
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
