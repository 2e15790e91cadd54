package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/DnzzL/dishnow/internal/recipe"
)

// GeminiEngine extracts recipes through the Gemini API with generation
// constrained to the recipe schema.
type GeminiEngine struct {
	APIKey string
	Model  string
}

func NewGemini(apiKey, model string) *GeminiEngine {
	return &GeminiEngine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *GeminiEngine) Name() string { return "gemini" }

func (e *GeminiEngine) Extract(ctx context.Context, content string) (*recipe.Recipe, error) {
	if e.APIKey == "" {
		return nil, &ExtractionError{Engine: e.Name(), Err: errors.New("GEMINI_API_KEY is empty")}
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: err}
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   recipe.GenSchema(),
	}

	resp, err := m.GenerateContent(ctx, genai.Text(buildPrompt(content)))
	if err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: err}
	}
	txt := firstText(resp)
	if txt == "" {
		return nil, &ExtractionError{Engine: e.Name(), Err: errors.New("empty response")}
	}

	var r recipe.Recipe
	if err := json.Unmarshal([]byte(stripCodeFences(txt)), &r); err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: fmt.Errorf("bad JSON: %w", err)}
	}
	return &r, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return strings.TrimSpace(sb.String())
}

func ptrFloat32(f float32) *float32 { return &f }
