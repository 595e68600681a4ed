package metrics

import (
	"fmt"

	prose "github.com/tsawler/prose/v3"
)

// Sentiment is the document-level polarity/subjectivity pair produced by the
// lexicon analyzer.
type Sentiment struct {
	Polarity     float64 // -1 (negative) to 1 (positive)
	Subjectivity float64 // 0 (objective) to 1 (subjective)
}

// SentimentAnalyzer wraps the prose lexicon analyzer. Construct once and
// reuse across documents; lexicon loading is not cheap.
type SentimentAnalyzer struct {
	analyzer *prose.SentimentAnalyzer
}

// NewSentimentAnalyzer loads the English sentiment lexicon with default
// configuration.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		analyzer: prose.NewSentimentAnalyzer(prose.English, prose.DefaultSentimentConfig()),
	}
}

// Analyze scores the sentence-preserving text variant. Entity extraction is
// disabled: sentiment only needs tokens and sentence boundaries.
func (s *SentimentAnalyzer) Analyze(text string) (Sentiment, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return Sentiment{}, fmt.Errorf("sentiment: %w", err)
	}
	score := s.analyzer.AnalyzeDocument(doc)
	return Sentiment{Polarity: score.Polarity, Subjectivity: score.Subjectivity}, nil
}
