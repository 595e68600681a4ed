package metrics

import "testing"

func TestSentimentAnalyzer_BoundsAndDirection(t *testing.T) {
	sa := NewSentimentAnalyzer()

	pos, err := sa.Analyze("I love this. It is wonderful and amazing.")
	if err != nil {
		t.Fatalf("positive: %v", err)
	}
	neg, err := sa.Analyze("I hate this. It is terrible and awful.")
	if err != nil {
		t.Fatalf("negative: %v", err)
	}

	for _, s := range []Sentiment{pos, neg} {
		if s.Polarity < -1 || s.Polarity > 1 {
			t.Fatalf("polarity out of range: %v", s.Polarity)
		}
		if s.Subjectivity < 0 || s.Subjectivity > 1 {
			t.Fatalf("subjectivity out of range: %v", s.Subjectivity)
		}
	}
	if pos.Polarity <= neg.Polarity {
		t.Fatalf("expected positive text to score above negative: %v <= %v", pos.Polarity, neg.Polarity)
	}
}
