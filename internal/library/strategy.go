package library

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathanwong05/NLP-Library/internal/extract"
	"github.com/jonathanwong05/NLP-Library/internal/fetch"
	"github.com/jonathanwong05/NLP-Library/internal/metrics"
)

// Strategy obtains a document's raw text from some reference (a path, a URL)
// and runs it through the analysis pipeline.
type Strategy interface {
	Parse(ctx context.Context, ref string) (Results, error)
}

// FileStrategy reads a local plain-text file.
type FileStrategy struct {
	Pipeline *Pipeline
}

func (s *FileStrategy) Parse(_ context.Context, path string) (Results, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.Pipeline.Analyze(string(raw))
}

// WebStrategy fetches a page and extracts the content region named by
// Selector (a class token list). With an empty Selector the whole readable
// page is used.
type WebStrategy struct {
	Client   *fetch.Client
	Selector string
	Pipeline *Pipeline
}

func (s *WebStrategy) Parse(ctx context.Context, url string) (Results, error) {
	body, err := s.Client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	var text string
	if s.Selector != "" {
		text = extract.ByClass(body, s.Selector)
	} else {
		text = extract.Page(body).Text
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("extract %s: %w", url, metrics.ErrEmptyInput)
	}
	return s.Pipeline.Analyze(text)
}
