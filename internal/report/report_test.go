package report

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathanwong05/NLP-Library/internal/library"
)

func twoDocLibrary() *library.Library {
	lib := library.New()
	lib.Register("Song A", library.Results{
		library.MetricWordCount: map[string]int{"la": 5, "love": 3, "rain": 1},
		library.MetricNumWords:  9,
	})
	lib.Register("Song B", library.Results{
		library.MetricWordCount: map[string]int{"night": 4, "gold": 2, "la": 1},
		library.MetricNumWords:  7,
	})
	return lib
}

func TestTopWordEdges_TwoByTwo(t *testing.T) {
	edges := TopWordEdges(twoDocLibrary(), 2)
	// 2 labels x top-2 words each.
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.Value <= 0 {
			t.Fatalf("edge %v has non-positive value", e)
		}
	}
	// Labels in registration order, words by descending count.
	want := []Edge{
		{"Song A", "la", 5},
		{"Song A", "love", 3},
		{"Song B", "night", 4},
		{"Song B", "gold", 2},
	}
	for i, w := range want {
		if edges[i] != w {
			t.Fatalf("edge[%d] = %v, want %v", i, edges[i], w)
		}
	}
}

func TestTopWordEdges_TiesBreakAlphabetically(t *testing.T) {
	lib := library.New()
	lib.Register("A", library.Results{
		library.MetricWordCount: map[string]int{"zeta": 2, "alpha": 2, "mid": 2},
	})
	edges := TopWordEdges(lib, 2)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %v", edges)
	}
	if edges[0].Target != "alpha" || edges[1].Target != "mid" {
		t.Fatalf("unexpected tie order: %v", edges)
	}
}

func TestTopWordEdges_DefaultK(t *testing.T) {
	lib := library.New()
	counts := map[string]int{"a": 9, "b": 8, "c": 7, "d": 6, "e": 5, "f": 4, "g": 3}
	lib.Register("A", library.Results{library.MetricWordCount: counts})
	if got := len(TopWordEdges(lib, 0)); got != 5 {
		t.Fatalf("expected default of 5 words, got %d", got)
	}
}

func TestTopWordEdges_EmptyLibrary(t *testing.T) {
	if edges := TopWordEdges(library.New(), 3); len(edges) != 0 {
		t.Fatalf("expected no edges, got %v", edges)
	}
}

func TestRenderPDF(t *testing.T) {
	lib := twoDocLibrary()
	lib.Register("Song A", library.Results{
		library.MetricPolarity:     0.4,
		library.MetricSubjectivity: 0.7,
		library.MetricReadingEase:  85.2,
	})
	lib.Register("Song B", library.Results{
		library.MetricPolarity:     -0.3,
		library.MetricSubjectivity: 0.5,
		library.MetricReadingEase:  62.9,
	})

	out := filepath.Join(t.TempDir(), "charts.pdf")
	if err := RenderPDF(lib, out, Options{Title: "test corpus", TopWords: 2}); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PDF")
	}
}

func TestRenderPDF_ManyDistinctWords(t *testing.T) {
	// A wide corpus produces more word nodes than fixed 3mm gaps can fit in
	// the plot height; the layout must still come out positive.
	lib := library.New()
	for i := 0; i < 12; i++ {
		counts := make(map[string]int, 5)
		for j := 0; j < 5; j++ {
			counts[fmt.Sprintf("word%02d%d", i, j)] = j + 1
		}
		lib.Register(fmt.Sprintf("Song %02d", i), library.Results{
			library.MetricWordCount: counts,
			library.MetricNumWords:  15,
		})
	}

	out := filepath.Join(t.TempDir(), "charts.pdf")
	if err := RenderPDF(lib, out, Options{Title: "wide corpus", TopWords: 5}); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PDF")
	}
}

func TestNodeGap_LeavesRoomForNodes(t *testing.T) {
	if g := nodeGap(1); g != 0 {
		t.Fatalf("single node needs no gap, got %v", g)
	}
	if g := nodeGap(5); g != 3.0 {
		t.Fatalf("small columns keep the full gap, got %v", g)
	}
	for _, n := range []int{22, 60, 200} {
		if used := nodeGap(n) * float64(n-1); used >= plotH {
			t.Fatalf("gaps for %d nodes consume the plot: %v >= %v", n, used, plotH)
		}
	}
}

func TestRenderPDF_EmptyRegistryFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "charts.pdf")
	if err := RenderPDF(library.New(), out, Options{}); err == nil {
		t.Fatalf("expected error for empty registry")
	}
}
