package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/DnzzL/dishnow/internal/auth"
	"github.com/DnzzL/dishnow/internal/config"
	"github.com/DnzzL/dishnow/internal/content"
	"github.com/DnzzL/dishnow/internal/extract"
	"github.com/DnzzL/dishnow/internal/handle"
	"github.com/DnzzL/dishnow/internal/pocketbase"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	store := pocketbase.New(cfg.PocketBaseURL, cfg.PocketBaseEmail, cfg.PocketBasePassword)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.Authenticate(ctx); err != nil {
		log.Fatalf("pocketbase auth against %s: %v", cfg.PocketBaseURL, err)
	}

	engines := &extract.Engines{
		Gemini:  extract.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel),
		Mistral: extract.NewMistral(cfg.MistralAPIKey, cfg.MistralModel),
	}
	engine, err := engines.Get(cfg.LLMProvider)
	if err != nil {
		log.Fatal(err)
	}

	h := handle.New(
		content.NewFetcher(),
		content.NewOCRClient(cfg.MistralAPIKey, cfg.MistralOCRModel),
		engine,
		store,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/extract", h.Extract)
	r.Get("/api/recipes/{id}", h.Recipe)

	// browser navigation (everything outside /api and /healthz) sits behind
	// the session guard
	r.With(auth.Guard).Get("/*", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("dishnow"))
	})

	addr := ":" + cfg.Port
	log.Printf("dishnow listening on %s (llm=%s, store=%s)", addr, engine.Name(), cfg.PocketBaseURL)
	log.Fatal(http.ListenAndServe(addr, r))
}
