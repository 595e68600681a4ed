// Package library holds the analysis session's core data structure: a
// registry mapping each metric name to the per-document values computed for
// it, plus the parsing strategies that populate it.
package library

import "sort"

// Results is one document's worth of computed metrics, keyed by metric name.
// Values are heterogeneous: frequency maps, scalars, word sets.
type Results map[string]any

// Library accumulates metric values across registered documents:
// metric name -> (document label -> value). Label insertion order is
// preserved per metric for display; the metric set itself is unordered.
// Strictly single-writer, single-reader.
type Library struct {
	data  map[string]map[string]any
	order map[string][]string
}

// New returns an empty Library.
func New() *Library {
	return &Library{
		data:  make(map[string]map[string]any),
		order: make(map[string][]string),
	}
}

// Register stores one document's results under label. For every metric the
// parse produced, the document's prior value (if any) is overwritten; metrics
// absent from results keep whatever an earlier registration put there, so
// repeated partial registrations merge rather than replace. Use Remove first
// for full-replace semantics.
func (l *Library) Register(label string, results Results) {
	for metric, value := range results {
		m, ok := l.data[metric]
		if !ok {
			m = make(map[string]any)
			l.data[metric] = m
		}
		if _, exists := m[label]; !exists {
			l.order[metric] = append(l.order[metric], label)
		}
		m[label] = value
	}
}

// Remove deletes every metric value registered under label.
func (l *Library) Remove(label string) {
	for metric, m := range l.data {
		if _, ok := m[label]; !ok {
			continue
		}
		delete(m, label)
		labels := l.order[metric]
		for i, lb := range labels {
			if lb == label {
				l.order[metric] = append(labels[:i], labels[i+1:]...)
				break
			}
		}
	}
}

// GetMetric returns a copy of the label -> value mapping for the metric, or
// an empty non-nil map when the metric was never produced. Never an error.
func (l *Library) GetMetric(name string) map[string]any {
	out := make(map[string]any, len(l.data[name]))
	for label, v := range l.data[name] {
		out[label] = v
	}
	return out
}

// LabelsFor returns the labels holding a value for the metric, in
// registration order.
func (l *Library) LabelsFor(name string) []string {
	labels := l.order[name]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// Metrics returns the sorted names of every metric registered so far.
func (l *Library) Metrics() []string {
	out := make([]string, 0, len(l.data))
	for name := range l.data {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FloatMetric returns the metric's values coerced to float64, dropping
// labels whose value is not numeric.
func (l *Library) FloatMetric(name string) map[string]float64 {
	out := make(map[string]float64)
	for label, v := range l.data[name] {
		switch n := v.(type) {
		case float64:
			out[label] = n
		case int:
			out[label] = float64(n)
		}
	}
	return out
}

// CountsMetric returns the metric's values as frequency maps, dropping
// labels whose value has another shape.
func (l *Library) CountsMetric(name string) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for label, v := range l.data[name] {
		if counts, ok := v.(map[string]int); ok {
			out[label] = counts
		}
	}
	return out
}
