package config

import (
	"log"
	"os"
)

type Config struct {
	Port            string
	PublicServerURL string

	LLMProvider string

	GeminiAPIKey string
	GeminiModel  string

	MistralAPIKey   string
	MistralModel    string
	MistralOCRModel string

	PocketBaseURL      string
	PocketBaseEmail    string
	PocketBasePassword string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		PublicServerURL: getEnv("PUBLIC_SERVER_URL", ""),

		LLMProvider: getEnv("LLM_PROVIDER", "mistral"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		MistralAPIKey:   getEnv("MISTRAL_API_KEY", ""),
		MistralModel:    getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		MistralOCRModel: getEnv("MISTRAL_OCR_MODEL", "mistral-ocr-latest"),

		// PocketBase superuser credentials are required: every extraction
		// ends in a store write.
		PocketBaseURL:      getEnv("POCKETBASE_URL", "http://localhost:8090"),
		PocketBaseEmail:    mustEnv("POCKETBASE_ADMIN_EMAIL"),
		PocketBasePassword: mustEnv("POCKETBASE_ADMIN_PASSWORD"),
	}
	return cfg
}
