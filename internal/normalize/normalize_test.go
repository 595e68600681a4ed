package normalize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClean_StripsPunctuationAndLowercases(t *testing.T) {
	got := Clean("Hello, World! Don't stop.", Options{})
	want := "hello world dont stop"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestClean_PreservesSentencePunctuation(t *testing.T) {
	got := Clean("Hello, World! Don't stop.", Options{PreservePunctuation: true})
	want := "hello world! dont stop."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestClean_FoldsCombiningMarks(t *testing.T) {
	got := Clean("Café naïve", Options{})
	want := "cafe naive"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestClean_NoStopWordsByDefault(t *testing.T) {
	// The zero Options must not filter anything; the baseline scenario
	// depends on "to be or not to be" surviving intact.
	got := Clean("To be or not to be", Options{})
	if got != "to be or not to be" {
		t.Fatalf("unexpected filtering: %q", got)
	}
}

func TestClean_RemovesLoadedStopWords(t *testing.T) {
	stop := NewStopWords("the", "a", "of")
	got := Clean("The rime of the Ancient Mariner", Options{Stop: stop})
	want := "rime ancient mariner"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestClean_RemovesStopWordsWithSentencePunctuation(t *testing.T) {
	// Both cleaning variants must agree on what counts as a stop word, even
	// when the token carries its sentence terminator.
	stop := NewStopWords("the", "on")
	got := Clean("We walked on and on. The dog barked!", Options{PreservePunctuation: true, Stop: stop})
	want := "we walked and dog barked!"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLanguageStopWords(t *testing.T) {
	stop := LanguageStopWords("en")
	if !stop.Contains("the") {
		t.Fatalf("expected 'the' to be an English stop word")
	}
	if stop.Contains("mariner") {
		t.Fatalf("did not expect 'mariner' to be a stop word")
	}
	got := stop.Filter([]string{"the", "ancient", "mariner"})
	if len(got) != 2 || got[0] != "ancient" || got[1] != "mariner" {
		t.Fatalf("unexpected filter result: %v", got)
	}
}

func TestLoadStopWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stop_words.txt")
	if err := os.WriteFile(path, []byte("the a an\nOF\nto\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stop, err := LoadStopWords(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stop.Len() != 5 {
		t.Fatalf("expected 5 stop words, got %d", stop.Len())
	}
	if !stop.Contains("of") {
		t.Fatalf("expected lowercased 'of' in set")
	}
}

func TestLoadStopWords_MissingFile(t *testing.T) {
	if _, err := LoadStopWords(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
