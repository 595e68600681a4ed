package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values (flags, config file) take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("TEXTLIB_OUTPUT")
	}
	if cfg.StopWordsPath == "" {
		cfg.StopWordsPath = os.Getenv("TEXTLIB_STOPWORDS")
	}
	if cfg.StopWordsLang == "" {
		cfg.StopWordsLang = os.Getenv("TEXTLIB_STOPWORDS_LANG")
	}
	if cfg.RhymeDictPath == "" {
		cfg.RhymeDictPath = os.Getenv("TEXTLIB_RHYME_DICT")
	}
	if cfg.Selector == "" {
		cfg.Selector = os.Getenv("TEXTLIB_SELECTOR")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("TEXTLIB_UA")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("TEXTLIB_CACHE_DIR")
	}

	if cfg.TopWords == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TEXTLIB_TOP_WORDS"))); err == nil && n > 0 {
			cfg.TopWords = n
		}
	}
	if cfg.Timeout == 0 {
		if d, err := time.ParseDuration(os.Getenv("TEXTLIB_TIMEOUT")); err == nil {
			cfg.Timeout = d
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Verbose, "TEXTLIB_VERBOSE")
	setBool(&cfg.CacheClear, "TEXTLIB_CACHE_CLEAR")
}
