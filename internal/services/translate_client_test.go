package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("langpair"); got != "en|hi" {
			t.Errorf("unexpected langpair %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "hello" {
			t.Errorf("unexpected q %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"नमस्ते"},"responseStatus":200}`))
	}))
	defer srv.Close()

	c := NewTranslateClient(srv.URL)
	got, err := c.Translate(context.Background(), "hello", "en", "hi")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "नमस्ते" {
		t.Fatalf("expected translation, got %q", got)
	}
}

func TestTranslateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewTranslateClient(srv.URL)
	if _, err := c.Translate(context.Background(), "hello", "en", "hi"); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}

func TestTranslateBadStatusInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":403}`))
	}))
	defer srv.Close()

	c := NewTranslateClient(srv.URL)
	if _, err := c.Translate(context.Background(), "hello", "en", "hi"); err == nil {
		t.Fatalf("expected error on responseStatus != 200")
	}
}
