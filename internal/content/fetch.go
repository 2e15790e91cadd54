package content

import (
	"context"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves a page and extracts the body element as working content
// for the extraction prompt.
type Fetcher struct {
	httpc *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

// FromURL GETs the page, parses it as HTML, and returns the body element's
// inner markup converted to markdown. The markdown pass just trims prompt
// size; if conversion fails the raw body HTML is returned instead.
func (f *Fetcher) FromURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	resp, err := f.httpc.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	body, err := doc.Find("body").Html()
	if err != nil || strings.TrimSpace(body) == "" {
		return "", ErrEmptyContent
	}

	if md, err := htmltomarkdown.ConvertString(body); err == nil && strings.TrimSpace(md) != "" {
		return md, nil
	}
	return body, nil
}
