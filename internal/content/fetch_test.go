package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFromURL(t *testing.T) {
	page := `<html><head><title>x</title></head><body>
		<h1>Shakshuka</h1>
		<ul><li>4 eggs</li><li>1 tbsp olive oil</li></ul>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	got, err := NewFetcher().FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if !strings.Contains(got, "Shakshuka") || !strings.Contains(got, "4 eggs") {
		t.Fatalf("content missing body text: %q", got)
	}
	if strings.Contains(got, "<title>") {
		t.Fatalf("content should not carry head markup: %q", got)
	}
}

func TestFromURLStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fe.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", fe.Status)
	}
}

func TestFromURLNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
}

func TestFromURLEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>only a head</title></head><body></body></html>"))
	}))
	defer srv.Close()

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}
