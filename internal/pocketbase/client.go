// Package pocketbase is a minimal administrative client for the PocketBase
// REST API: password auth as a superuser, silent token refresh, and record
// create/view on a collection. Each call builds its own request from the
// caller's context, so concurrent requests never cancel each other.
package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshLead re-authenticates when the token would expire within this window.
const refreshLead = 30 * time.Minute

// AuthError is a failed authentication or token refresh.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pocketbase auth: %v", e.Err)
	}
	return fmt.Sprintf("pocketbase auth: status %d", e.Status)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a failed store operation (network or authorization).
type APIError struct {
	Collection string
	Status     int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pocketbase %s: %v", e.Collection, e.Err)
	}
	return fmt.Sprintf("pocketbase %s: status %d", e.Collection, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// Record is a stored document as PocketBase returns it, id and system fields
// included.
type Record map[string]any

// ID returns the record id, or "" when absent.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Client is the process-wide superuser client. Safe for concurrent use: the
// token is swapped atomically under the mutex and every request captures the
// token string it starts with.
type Client struct {
	baseURL  string
	email    string
	password string
	httpc    *http.Client

	mu       sync.RWMutex
	token    string
	tokenExp time.Time
}

func New(baseURL, email, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		password: password,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Authenticate performs the initial superuser login. Call once at startup;
// afterwards the client refreshes silently.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticateLocked(ctx)
}

func (c *Client) authenticateLocked(ctx context.Context) error {
	payload, _ := json.Marshal(map[string]string{
		"identity": c.email,
		"password": c.password,
	})
	url := c.baseURL + "/api/collections/_superusers/auth-with-password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return &AuthError{Status: resp.StatusCode, Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))}
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return &AuthError{Err: err}
	}
	if out.Token == "" {
		return &AuthError{Err: fmt.Errorf("empty token in auth response")}
	}

	c.token = out.Token
	c.tokenExp = tokenExpiry(out.Token)
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the server
// signed the token, we only need to know when to ask for a new one.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// freshToken returns a token valid for at least refreshLead more, refreshing
// under the lock when needed. An in-flight request holding an older token
// keeps using it; the server accepts both until real expiry.
func (c *Client) freshToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, exp := c.token, c.tokenExp
	c.mu.RUnlock()
	if token != "" && time.Until(exp) > refreshLead {
		return token, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// another request may have refreshed while we waited
	if c.token != "" && time.Until(c.tokenExp) > refreshLead {
		return c.token, nil
	}
	if err := c.authenticateLocked(ctx); err != nil {
		return "", err
	}
	return c.token, nil
}

// Create inserts a document into the named collection and returns the stored
// record.
func (c *Client) Create(ctx context.Context, collection string, document any) (Record, error) {
	token, err := c.freshToken(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(document)
	if err != nil {
		return nil, &APIError{Collection: collection, Err: err}
	}
	url := fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Collection: collection, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	return c.do(req, collection)
}

// View fetches a single record by id.
func (c *Client) View(ctx context.Context, collection, id string) (Record, error) {
	token, err := c.freshToken(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Collection: collection, Err: err}
	}
	req.Header.Set("Authorization", token)

	return c.do(req, collection)
}

func (c *Client) do(req *http.Request, collection string) (Record, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &APIError{Collection: collection, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		x, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Collection: collection, Status: resp.StatusCode, Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))}
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, &APIError{Collection: collection, Err: err}
	}
	return rec, nil
}
