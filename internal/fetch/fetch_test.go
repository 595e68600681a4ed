package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "textlib-test/1.0" {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		w.Write([]byte("<html><body>hi</body></html>"))
	}))
	defer srv.Close()

	c := &Client{UserAgent: "textlib-test/1.0"}
	body, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("expected body")
	}
}

func TestGet_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := &Client{}
	_, err := c.Get(context.Background(), srv.URL)
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != 404 {
		t.Fatalf("expected StatusError 404, got %v", err)
	}
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := &Client{MaxAttempts: 3, PerRequestTimeout: 2 * time.Second}
	body, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(body) != "ok" {
		t.Fatalf("unexpected body %q", body)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := &Client{MaxAttempts: 3}
	if _, err := c.Get(context.Background(), srv.URL); !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt for 403, got %d", got)
	}
}

func TestGet_RejectsNonHTTPScheme(t *testing.T) {
	c := &Client{}
	if _, err := c.Get(context.Background(), "ftp://example.com/x"); err == nil {
		t.Fatalf("expected error for ftp scheme")
	}
}

func TestGet_ServesFromCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	c := &Client{Cache: &PageCache{Dir: t.TempDir()}}
	for i := 0; i < 3; i++ {
		body, err := c.Get(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if string(body) != "fresh" {
			t.Fatalf("unexpected body %q", body)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one network fetch, got %d", got)
	}
}

func TestPageCache_RoundTrip(t *testing.T) {
	cache := &PageCache{Dir: t.TempDir()}
	if _, err := cache.Load("http://example.com"); err == nil {
		t.Fatalf("expected miss on empty cache")
	}
	if err := cache.Save("http://example.com", []byte("cached")); err != nil {
		t.Fatalf("save: %v", err)
	}
	body, err := cache.Load("http://example.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(body) != "cached" {
		t.Fatalf("unexpected body %q", body)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := cache.Load("http://example.com"); err == nil {
		t.Fatalf("expected miss after clear")
	}
}
