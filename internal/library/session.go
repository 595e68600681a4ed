package library

import (
	"context"
	"errors"
)

// Session ties one analysis run together: the registry, the shared pipeline,
// and a strategy per source kind.
type Session struct {
	Library  *Library
	Pipeline *Pipeline

	file *FileStrategy
	web  *WebStrategy
}

// NewSession wires a session around the pipeline. A nil web client is fine
// for file-only corpora; LoadURL then fails cleanly.
func NewSession(p *Pipeline, web *WebStrategy) *Session {
	return &Session{
		Library:  New(),
		Pipeline: p,
		file:     &FileStrategy{Pipeline: p},
		web:      web,
	}
}

// LoadFile parses a local file and registers it. An empty label defaults to
// the path.
func (s *Session) LoadFile(ctx context.Context, path, label string) error {
	return s.load(ctx, path, label, s.file)
}

// LoadURL fetches and parses a web page and registers it. A non-empty
// selector overrides the session's default region selector for this one
// document. An empty label defaults to the URL.
func (s *Session) LoadURL(ctx context.Context, url, selector, label string) error {
	if s.web == nil {
		return errors.New("session has no web strategy configured")
	}
	strat := s.web
	if selector != "" && selector != strat.Selector {
		override := *strat
		override.Selector = selector
		strat = &override
	}
	return s.load(ctx, url, label, strat)
}

func (s *Session) load(ctx context.Context, ref, label string, strat Strategy) error {
	results, err := strat.Parse(ctx, ref)
	if err != nil {
		return err
	}
	if label == "" {
		label = ref
	}
	s.Library.Register(label, results)
	return nil
}
