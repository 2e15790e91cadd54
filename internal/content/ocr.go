package content

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const mistralAPIBase = "https://api.mistral.ai"

// OCRClient reads recipe text out of an uploaded photo through the Mistral
// OCR endpoint.
type OCRClient struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func NewOCRClient(apiKey, model string) *OCRClient {
	return &OCRClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: mistralAPIBase,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

type ocrRequest struct {
	Model    string      `json:"model"`
	Document ocrDocument `json:"document"`
}

type ocrDocument struct {
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
}

type ocrResponse struct {
	Pages []struct {
		Index    int    `json:"index"`
		Markdown string `json:"markdown"`
	} `json:"pages"`
}

// FromImage submits the image (raw base64, with or without a data: prefix)
// for page-level text recognition and returns all page texts joined with
// newlines. A provider failure is an *OcrError; a clean run that recognized
// nothing is ErrEmptyContent.
func (c *OCRClient) FromImage(ctx context.Context, imageB64 string) (string, error) {
	imageB64 = strings.TrimSpace(imageB64)
	dataURL := imageB64
	if !strings.HasPrefix(imageB64, "data:") {
		raw, err := base64.StdEncoding.DecodeString(imageB64)
		if err != nil || len(raw) == 0 {
			return "", &OcrError{Err: fmt.Errorf("invalid image base64")}
		}
		dataURL = "data:" + sniffMime(raw) + ";base64," + imageB64
	}

	payload, _ := json.Marshal(ocrRequest{
		Model:    c.Model,
		Document: ocrDocument{Type: "image_url", ImageURL: dataURL},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/ocr", bytes.NewReader(payload))
	if err != nil {
		return "", &OcrError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &OcrError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", &OcrError{Status: resp.StatusCode, Err: fmt.Errorf("mistral ocr %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))}
	}

	var out ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &OcrError{Err: err}
	}

	texts := make([]string, 0, len(out.Pages))
	for _, p := range out.Pages {
		texts = append(texts, p.Markdown)
	}
	joined := strings.Join(texts, "\n")
	if strings.TrimSpace(joined) == "" {
		return "", ErrEmptyContent
	}
	return joined, nil
}

func sniffMime(b []byte) string {
	switch {
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8:
		return "image/jpeg"
	case len(b) >= 8 && bytes.Equal(b[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return "image/png"
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
