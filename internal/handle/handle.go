// Package handle wires the request boundary: input validation, the
// acquire -> extract -> validate -> persist pipeline, and error-to-status
// mapping.
package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DnzzL/dishnow/internal/content"
	"github.com/DnzzL/dishnow/internal/extract"
	"github.com/DnzzL/dishnow/internal/pocketbase"
	"github.com/DnzzL/dishnow/internal/recipe"
)

// ErrBadRequest marks malformed or incomplete input; wrap it with the reason.
var ErrBadRequest = errors.New("bad request")

// Fetcher acquires content from a URL.
type Fetcher interface {
	FromURL(ctx context.Context, url string) (string, error)
}

// OCR acquires content from an uploaded image.
type OCR interface {
	FromImage(ctx context.Context, imageB64 string) (string, error)
}

// Store is the document-store surface the handlers need.
type Store interface {
	Create(ctx context.Context, collection string, document any) (pocketbase.Record, error)
	View(ctx context.Context, collection, id string) (pocketbase.Record, error)
}

// Handle carries the collaborators for all HTTP handlers.
type Handle struct {
	fetcher Fetcher
	ocr     OCR
	engine  extract.Engine
	store   Store
}

func New(fetcher Fetcher, ocr OCR, engine extract.Engine, store Store) *Handle {
	return &Handle{
		fetcher: fetcher,
		ocr:     ocr,
		engine:  engine,
		store:   store,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	body := map[string]any{"error": err.Error()}

	var oe *content.OcrError
	if errors.As(err, &oe) {
		body["hint"] = "try a different image or use a URL instead"
	}

	writeJSON(w, statusFor(err), body)
}

// statusFor maps the pipeline's error classes to HTTP statuses: caller
// mistakes are 4xx, upstream and store failures are 502.
func statusFor(err error) int {
	var (
		ve *recipe.ValidationError
		fe *content.FetchError
		oe *content.OcrError
		ee *extract.ExtractionError
		pe *pocketbase.APIError
		ae *pocketbase.AuthError
	)
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, content.ErrEmptyContent), errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fe), errors.As(err, &oe), errors.As(err, &ee),
		errors.As(err, &pe), errors.As(err, &ae):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
