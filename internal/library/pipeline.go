package library

import (
	"fmt"

	"github.com/jonathanwong05/NLP-Library/internal/metrics"
	"github.com/jonathanwong05/NLP-Library/internal/normalize"
	"github.com/jonathanwong05/NLP-Library/internal/rhyme"
)

// Metric names produced by the pipeline.
const (
	MetricWordCount      = "wordcount"
	MetricNumWords       = "numwords"
	MetricUniqueWords    = "unique_words"
	MetricWordRepetition = "word_repetition"
	MetricPolarity       = "polarity"
	MetricSubjectivity   = "subjectivity"
	MetricReadingEase    = "flesch_reading_ease"
	MetricKincaidGrade   = "flesch_kincaid_grade"
	MetricARI            = "automated_readability_index"
	MetricRhymeDensity   = "rhyme_density"
)

// Pipeline turns one document's raw text into Results. Stop words are an
// explicit field here, owned by the session that built the pipeline, not
// package state. Sentiment and Rhymes are optional; their metrics are
// omitted when nil.
type Pipeline struct {
	Stop      normalize.StopWords
	Sentiment *metrics.SentimentAnalyzer
	Rhymes    *rhyme.Dictionary
}

// Analyze cleans the text in two variants and runs every extractor over the
// appropriate one. Zero tokens after cleaning is an error: none of the ratio
// metrics are defined on empty text.
func (p *Pipeline) Analyze(raw string) (Results, error) {
	cleaned := normalize.Clean(raw, normalize.Options{Stop: p.Stop})
	tokens := metrics.Tokenize(cleaned)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("analyze: %w", metrics.ErrEmptyInput)
	}

	results := Results{
		MetricWordCount:   metrics.WordCount(cleaned),
		MetricNumWords:    len(tokens),
		MetricUniqueWords: metrics.UniqueWords(cleaned),
	}

	repetition, err := metrics.RepetitionRatio(cleaned)
	if err != nil {
		return nil, fmt.Errorf("word repetition: %w", err)
	}
	results[MetricWordRepetition] = repetition

	// Sentence-aware extractors read the minimally cleaned variant so that
	// . ! ? still mark boundaries.
	sentenceText := normalize.Clean(raw, normalize.Options{PreservePunctuation: true, Stop: p.Stop})

	if p.Sentiment != nil {
		s, err := p.Sentiment.Analyze(sentenceText)
		if err != nil {
			return nil, err
		}
		results[MetricPolarity] = s.Polarity
		results[MetricSubjectivity] = s.Subjectivity
	}

	readability, err := metrics.ComputeReadability(sentenceText)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}
	results[MetricReadingEase] = readability.FleschReadingEase
	results[MetricKincaidGrade] = readability.FleschKincaidGrade
	results[MetricARI] = readability.AutomatedReadability

	if p.Rhymes != nil {
		density, err := p.Rhymes.Density(tokens)
		if err != nil {
			return nil, fmt.Errorf("rhyme density: %w", err)
		}
		results[MetricRhymeDensity] = density
	}

	return results, nil
}
