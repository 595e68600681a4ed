// Package app wires the toolkit together: configuration, the per-document
// batch loop, and chart output.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jonathanwong05/NLP-Library/internal/fetch"
	"github.com/jonathanwong05/NLP-Library/internal/library"
	"github.com/jonathanwong05/NLP-Library/internal/metrics"
	"github.com/jonathanwong05/NLP-Library/internal/normalize"
	"github.com/jonathanwong05/NLP-Library/internal/report"
	"github.com/jonathanwong05/NLP-Library/internal/rhyme"
)

// ErrNoDocuments is returned when every document in the batch failed to
// register. Per the exit code policy this becomes a non-zero process exit.
var ErrNoDocuments = errors.New("no documents registered")

type App struct {
	cfg     Config
	session *library.Session
}

// New builds the session from configuration: stop words, the optional
// pronouncing dictionary, the sentiment analyzer, and the web strategy.
func New(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	var stop normalize.StopWords
	switch {
	case cfg.StopWordsPath != "":
		loaded, err := normalize.LoadStopWords(cfg.StopWordsPath)
		if err != nil {
			return nil, err
		}
		stop = loaded
		log.Debug().Int("count", stop.Len()).Str("file", cfg.StopWordsPath).Msg("stop words loaded")
	case cfg.StopWordsLang != "":
		stop = normalize.LanguageStopWords(cfg.StopWordsLang)
		log.Debug().Str("lang", cfg.StopWordsLang).Msg("using built-in stop word list")
	}

	pipeline := &library.Pipeline{
		Stop:      stop,
		Sentiment: metrics.NewSentimentAnalyzer(),
	}

	if cfg.RhymeDictPath != "" {
		dict, err := rhyme.LoadDictionary(cfg.RhymeDictPath)
		if err != nil {
			return nil, err
		}
		pipeline.Rhymes = dict
		log.Debug().Int("words", dict.Len()).Msg("pronouncing dictionary loaded")
	}

	client := &fetch.Client{
		HTTPClient:        &http.Client{},
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.MaxAttempts,
		PerRequestTimeout: cfg.Timeout,
	}
	if cfg.CacheDir != "" {
		cache := &fetch.PageCache{Dir: cfg.CacheDir}
		if cfg.CacheClear {
			if err := cache.Clear(); err != nil {
				return nil, err
			}
		}
		client.Cache = cache
	}

	web := &library.WebStrategy{Client: client, Selector: cfg.Selector, Pipeline: pipeline}
	return &App{cfg: cfg, session: library.NewSession(pipeline, web)}, nil
}

// Library exposes the registry, mainly for tests.
func (a *App) Library() *library.Library { return a.session.Library }

// Run processes the corpus sequentially and renders the chart PDF. A failed
// document is logged and skipped; the run fails only when nothing registers.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Documents) == 0 {
		return fmt.Errorf("%w: empty corpus", ErrNoDocuments)
	}

	registered := 0
	for _, doc := range a.cfg.Documents {
		var err error
		if doc.File != "" {
			err = a.session.LoadFile(ctx, doc.File, doc.Label)
		} else {
			err = a.session.LoadURL(ctx, doc.URL, doc.Selector, doc.Label)
		}
		if err != nil {
			log.Warn().Err(err).Str("label", doc.Label).Msg("document failed; skipping")
			continue
		}
		registered++
		log.Info().Str("label", labelOrRef(doc)).Msg("document registered")
	}
	if registered == 0 {
		return ErrNoDocuments
	}

	opts := report.Options{Title: a.cfg.Title, TopWords: a.cfg.TopWords}
	if err := report.RenderPDF(a.session.Library, a.cfg.OutputPath, opts); err != nil {
		return err
	}
	log.Info().Str("out", a.cfg.OutputPath).Int("documents", registered).Msg("wrote charts")
	return nil
}

func labelOrRef(doc Document) string {
	if doc.Label != "" {
		return doc.Label
	}
	if doc.File != "" {
		return doc.File
	}
	return doc.URL
}
