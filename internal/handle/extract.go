package handle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DnzzL/dishnow/internal/recipe"
)

// recipesCollection is the store collection every extraction lands in.
const recipesCollection = "recipes"

// ExtractRequest is the POST /api/extract body. Exactly one of URL and Image
// must be set.
type ExtractRequest struct {
	URL      string `json:"url,omitempty"`
	Image    string `json:"image,omitempty"` // base64, raw or data: URL
	AuthorID string `json:"authorId"`
}

func (req *ExtractRequest) validate() error {
	hasURL := strings.TrimSpace(req.URL) != ""
	hasImage := strings.TrimSpace(req.Image) != ""
	switch {
	case !hasURL && !hasImage:
		return fmt.Errorf("%w: either url or image must be provided", ErrBadRequest)
	case hasURL && hasImage:
		return fmt.Errorf("%w: url and image are mutually exclusive", ErrBadRequest)
	case strings.TrimSpace(req.AuthorID) == "":
		return fmt.Errorf("%w: authorId is required", ErrBadRequest)
	}
	return nil
}

// Extract runs the whole pipeline for one request: acquire content from the
// URL or the image, extract a recipe, normalize and validate it, persist it
// tagged with provenance and author, and return the stored record. Any
// failure before the store call writes nothing.
func (h *Handle) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad json: %v", ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 180*time.Second)
	defer cancel()

	var (
		text   string
		source string
		err    error
	)
	if strings.TrimSpace(req.URL) != "" {
		source = req.URL
		text, err = h.fetcher.FromURL(ctx, req.URL)
	} else {
		source = recipe.SourceImageUpload
		text, err = h.ocr.FromImage(ctx, req.Image)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.engine.Extract(ctx, text)
	if err != nil {
		writeError(w, err)
		return
	}

	recipe.Normalize(rec)
	rec.Source = source
	rec.Author = strings.TrimSpace(req.AuthorID)
	if err := recipe.Validate(rec); err != nil {
		writeError(w, err)
		return
	}

	stored, err := h.store.Create(ctx, recipesCollection, rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// Recipe returns a single stored record, mostly so clients can re-read what
// an extraction just wrote.
func (h *Handle) Recipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		writeError(w, fmt.Errorf("%w: missing record id", ErrBadRequest))
		return
	}

	rec, err := h.store.View(r.Context(), recipesCollection, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
