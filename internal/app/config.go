package app

import "time"

// Document identifies one corpus entry: a label plus either a local file path
// or a URL with an optional region selector override.
type Document struct {
	Label    string `yaml:"label"`
	File     string `yaml:"file"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
}

// Config holds runtime configuration for an analysis run.
type Config struct {
	// Corpus
	Documents []Document

	// Output
	OutputPath string
	Title      string
	TopWords   int

	// Normalization
	StopWordsPath string
	StopWordsLang string

	// Rhyme
	RhymeDictPath string

	// Web fetching
	Selector    string
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int
	CacheDir    string
	CacheClear  bool

	// Behavior
	Verbose bool
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.OutputPath == "" {
		c.OutputPath = "charts.pdf"
	}
	if c.TopWords == 0 {
		c.TopWords = 5
	}
	if c.UserAgent == "" {
		c.UserAgent = "textlib/1.0 (+https://github.com/jonathanwong05/NLP-Library)"
	}
	if c.Timeout == 0 {
		c.Timeout = 20 * time.Second
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	return c
}
