package content

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var fakeJPEG = base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10})

func newTestOCR(t *testing.T, handler http.HandlerFunc) (*OCRClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewOCRClient("test-key", "mistral-ocr-latest")
	c.BaseURL = srv.URL
	return c, srv
}

func TestFromImageJoinsPages(t *testing.T) {
	c, _ := newTestOCR(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/ocr" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		var req ocrRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Document.Type != "image_url" {
			t.Errorf("document type = %q", req.Document.Type)
		}
		if !strings.HasPrefix(req.Document.ImageURL, "data:image/jpeg;base64,") {
			t.Errorf("image url not a jpeg data url: %.40q", req.Document.ImageURL)
		}
		writeOCRPages(w, "# Grandma's Pie", "Bake for 1 hour.")
	})

	got, err := c.FromImage(context.Background(), fakeJPEG)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if got != "# Grandma's Pie\nBake for 1 hour." {
		t.Fatalf("joined pages = %q", got)
	}
}

func TestFromImageEmptyText(t *testing.T) {
	c, _ := newTestOCR(t, func(w http.ResponseWriter, r *http.Request) {
		writeOCRPages(w, "  ", "\n")
	})

	_, err := c.FromImage(context.Background(), fakeJPEG)
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestFromImageProviderFailure(t *testing.T) {
	c, _ := newTestOCR(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"over capacity"}`, http.StatusServiceUnavailable)
	})

	_, err := c.FromImage(context.Background(), fakeJPEG)
	var oe *OcrError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OcrError, got %v", err)
	}
	if errors.Is(err, ErrEmptyContent) {
		t.Fatal("provider failure must not look like empty content")
	}
	if oe.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", oe.Status)
	}
}

func TestFromImageBadBase64(t *testing.T) {
	c, _ := newTestOCR(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for undecodable input")
	})

	_, err := c.FromImage(context.Background(), "not//base64!!")
	var oe *OcrError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OcrError, got %v", err)
	}
}

func writeOCRPages(w http.ResponseWriter, pages ...string) {
	type page struct {
		Index    int    `json:"index"`
		Markdown string `json:"markdown"`
	}
	out := struct {
		Pages []page `json:"pages"`
	}{}
	for i, p := range pages {
		out.Pages = append(out.Pages, page{Index: i, Markdown: p})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
