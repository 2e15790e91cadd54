package content

import (
	"errors"
	"fmt"
)

// ErrEmptyContent means acquisition ran but produced nothing to extract from:
// a page without a body, or OCR output that is all whitespace. Kept separate
// from FetchError/OcrError so the boundary can tell "nothing there" apart
// from "the call failed".
var ErrEmptyContent = errors.New("no extractable content")

// FetchError is a network or HTTP-status failure retrieving a URL.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// OcrError is a failure of the OCR provider call itself, as opposed to a
// successful call that recognized no text.
type OcrError struct {
	Status int
	Err    error
}

func (e *OcrError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ocr: %v", e.Err)
	}
	return fmt.Sprintf("ocr: status %d", e.Status)
}

func (e *OcrError) Unwrap() error { return e.Err }
