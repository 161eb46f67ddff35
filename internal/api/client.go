// Package api is the typed client over the Football Hub REST backend. All
// state of record lives behind these endpoints; the client performs one
// request per operation with no retries, no batching and no caching beyond
// the cookie jar that carries the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// envelope is the uniform response shape of every endpoint:
// {success: bool, data|message: ...}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client talks to the Hub backend with a credentialed (cookie) session.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Options configures the client. Jar is required for session persistence;
// a nil Jar still works but the session dies with the process.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Jar     http.CookieJar
}

// New builds a client. The timeout applies to every exchange; there is no
// per-request deadline beyond the caller's context.
func New(opts Options, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout, Jar: opts.Jar},
		log:     logger.With().Str("module", "api").Logger(),
	}
}

// do performs one request/response exchange. Body (if non-nil) is sent as
// JSON; on a successful envelope, data is decoded into out (if non-nil).
// Failures come back as the domain errors from errors.go.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrTransport, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			// Not even an envelope; fall back to the status code alone.
			if serr := MapStatus(resp.StatusCode); serr != nil {
				return serr
			}
			return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
		}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Bool("success", env.Success).
		Dur("took", time.Since(start)).
		Msg("exchange")

	if !env.Success {
		if serr := MapStatus(resp.StatusCode); serr != nil && serr != ErrTransport {
			return serr
		}
		return &rejectedError{message: env.Message}
	}
	if serr := MapStatus(resp.StatusCode); serr != nil {
		return serr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decode data: %v", ErrTransport, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// esc escapes a path segment; emails in particular appear in paths.
func esc(segment string) string {
	return url.PathEscape(segment)
}
