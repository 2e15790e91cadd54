package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DnzzL/dishnow/internal/recipe"
)

const mistralAPIBase = "https://api.mistral.ai"

// MistralEngine extracts recipes through the Mistral chat completions API,
// with the recipe JSON schema as a strict response_format.
type MistralEngine struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func NewMistral(apiKey, model string) *MistralEngine {
	return &MistralEngine{
		APIKey:  strings.TrimSpace(apiKey),
		Model:   strings.TrimSpace(model),
		BaseURL: mistralAPIBase,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *MistralEngine) Name() string { return "mistral" }

func (e *MistralEngine) Extract(ctx context.Context, content string) (*recipe.Recipe, error) {
	if e.APIKey == "" {
		return nil, &ExtractionError{Engine: e.Name(), Err: errors.New("MISTRAL_API_KEY is empty")}
	}

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{"role": "user", "content": buildPrompt(content)},
		},
		"temperature": 0,
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "recipe",
				"strict": true,
				"schema": recipe.JSONSchema(),
			},
		},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return nil, &ExtractionError{Engine: e.Name(), Err: fmt.Errorf("mistral %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))}
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: err}
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return nil, &ExtractionError{Engine: e.Name(), Err: errors.New("empty response")}
	}

	var r recipe.Recipe
	if err := json.Unmarshal([]byte(stripCodeFences(out.Choices[0].Message.Content)), &r); err != nil {
		return nil, &ExtractionError{Engine: e.Name(), Err: fmt.Errorf("bad JSON: %w", err)}
	}
	return &r, nil
}
