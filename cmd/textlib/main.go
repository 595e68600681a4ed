package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jonathanwong05/NLP-Library/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load .env before any flag default reads the environment. Existing
	// exported variables win over .env values.
	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed; continuing")
	}

	var (
		configPath string
		outputPath string
		title      string
		stopWords  string
		stopLang   string
		rhymeDict  string
		selector   string
		userAgent  string
		topWords   int
		timeout    time.Duration
		attempts   int
		cacheDir   string
		cacheClear bool
		verbose    bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("TEXTLIB_CONFIG"), "Path to yaml corpus manifest")
	flag.StringVar(&outputPath, "out", "", "Path to write the chart PDF (default charts.pdf)")
	flag.StringVar(&title, "title", "", "Corpus title shown in the PDF metadata")
	flag.StringVar(&stopWords, "stopwords", "", "Path to a whitespace-separated stop word file")
	flag.StringVar(&stopLang, "stopwords.lang", "", "Use the built-in stop word list for this language code, e.g. 'en'")
	flag.StringVar(&rhymeDict, "rhymes", "", "Path to a cmudict-format pronouncing dictionary (enables rhyme density)")
	flag.StringVar(&selector, "selector", "", "Default class selector for web document content regions")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for web fetches")
	flag.IntVar(&topWords, "topwords", 0, "Words per document in the Sankey diagram (default 5)")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request fetch timeout (default 20s)")
	flag.IntVar(&attempts, "attempts", 0, "Fetch attempts including retries (default 3)")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the fetched-page cache; empty disables caching")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear the page cache before the run")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		OutputPath:    outputPath,
		Title:         title,
		StopWordsPath: stopWords,
		StopWordsLang: stopLang,
		RhymeDictPath: rhymeDict,
		Selector:      selector,
		UserAgent:     userAgent,
		TopWords:      topWords,
		Timeout:       timeout,
		MaxAttempts:   attempts,
		CacheDir:      cacheDir,
		CacheClear:    cacheClear,
		Verbose:       verbose,
	}

	// Positional arguments are treated as local text files labeled by path.
	for _, path := range flag.Args() {
		cfg.Documents = append(cfg.Documents, app.Document{File: path})
	}

	// Precedence: flags > env > file > defaults. Environment values fill the
	// gaps flags left, then the config file fills whatever remains.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file")
			os.Exit(2)
		}
		app.MergeFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		os.Exit(2)
	}
	if err := a.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
