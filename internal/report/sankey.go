// Package report renders registry contents as comparative charts: bar charts
// for scalar metrics and a Sankey flow diagram linking documents to their
// most frequent words.
package report

import (
	"sort"

	"github.com/jonathanwong05/NLP-Library/internal/library"
)

// Edge is one Sankey link: a flow of Value from Source to Target.
type Edge struct {
	Source string
	Target string
	Value  float64
}

// TopWordEdges builds the document -> word edge list: for every label with a
// word count, its k most frequent words, one edge per (label, word) with the
// occurrence count as the value. Ties break alphabetically so output is
// deterministic. Labels appear in registration order.
func TopWordEdges(lib *library.Library, k int) []Edge {
	if k <= 0 {
		k = 5
	}
	counts := lib.CountsMetric(library.MetricWordCount)
	var edges []Edge
	for _, label := range lib.LabelsFor(library.MetricWordCount) {
		freq, ok := counts[label]
		if !ok {
			continue
		}
		words := make([]string, 0, len(freq))
		for w := range freq {
			words = append(words, w)
		}
		sort.Slice(words, func(i, j int) bool {
			if freq[words[i]] != freq[words[j]] {
				return freq[words[i]] > freq[words[j]]
			}
			return words[i] < words[j]
		})
		if len(words) > k {
			words = words[:k]
		}
		for _, w := range words {
			edges = append(edges, Edge{Source: label, Target: w, Value: float64(freq[w])})
		}
	}
	return edges
}

// nodes splits the edge list into its distinct source and target node names,
// each in first-appearance order, with per-node flow totals for sizing.
func nodes(edges []Edge) (sources, targets []string, flow map[string]float64) {
	flow = make(map[string]float64)
	seenS := make(map[string]struct{})
	seenT := make(map[string]struct{})
	for _, e := range edges {
		if _, ok := seenS[e.Source]; !ok {
			seenS[e.Source] = struct{}{}
			sources = append(sources, e.Source)
		}
		if _, ok := seenT[e.Target]; !ok {
			seenT[e.Target] = struct{}{}
			targets = append(targets, e.Target)
		}
		flow["s:"+e.Source] += e.Value
		flow["t:"+e.Target] += e.Value
	}
	return sources, targets, flow
}
