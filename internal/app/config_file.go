package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the yaml manifest schema. Nested sections map naturally onto
// flags and env.
type FileConfig struct {
	Documents []Document `yaml:"documents"`

	Output struct {
		Path     string `yaml:"path"`
		Title    string `yaml:"title"`
		TopWords int    `yaml:"topWords"`
	} `yaml:"output"`

	StopWords struct {
		File     string `yaml:"file"`
		Language string `yaml:"language"`
	} `yaml:"stopWords"`

	Rhymes struct {
		Dictionary string `yaml:"dictionary"`
	} `yaml:"rhymes"`

	Web struct {
		Selector  string `yaml:"selector"`
		UserAgent string `yaml:"ua"`
		// Timeout is a Go duration string, e.g. "30s".
		Timeout     string `yaml:"timeout"`
		MaxAttempts int    `yaml:"maxAttempts"`
	} `yaml:"web"`

	Cache struct {
		Dir   string `yaml:"dir"`
		Clear bool   `yaml:"clear"`
	} `yaml:"cache"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile parses the yaml manifest at path.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for i, d := range fc.Documents {
		if d.File == "" && d.URL == "" {
			return nil, fmt.Errorf("config %s: document %d has neither file nor url", path, i)
		}
		if d.File != "" && d.URL != "" {
			return nil, fmt.Errorf("config %s: document %d has both file and url", path, i)
		}
	}
	return &fc, nil
}

// MergeFileConfig folds file values into cfg. Values already set on cfg (from
// flags) win; the file only fills gaps. Documents from the file are appended
// after any given on the command line.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	cfg.Documents = append(cfg.Documents, fc.Documents...)
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output.Path
	}
	if cfg.Title == "" {
		cfg.Title = fc.Output.Title
	}
	if cfg.TopWords == 0 {
		cfg.TopWords = fc.Output.TopWords
	}
	if cfg.StopWordsPath == "" {
		cfg.StopWordsPath = fc.StopWords.File
	}
	if cfg.StopWordsLang == "" {
		cfg.StopWordsLang = fc.StopWords.Language
	}
	if cfg.RhymeDictPath == "" {
		cfg.RhymeDictPath = fc.Rhymes.Dictionary
	}
	if cfg.Selector == "" {
		cfg.Selector = fc.Web.Selector
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Web.UserAgent
	}
	if cfg.Timeout == 0 && fc.Web.Timeout != "" {
		if d, err := time.ParseDuration(fc.Web.Timeout); err == nil {
			cfg.Timeout = d
		}
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = fc.Web.MaxAttempts
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
