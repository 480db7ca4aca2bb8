package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/bosphorusfellas/clubclient/internal/common"
	"github.com/bosphorusfellas/clubclient/internal/logging"
)

// HTTPClient talks JSON over HTTPS to the club API. It owns no state beyond
// the base URL and the injected token source; it retries nothing and applies
// no timeout of its own (the caller's context governs).
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds the transport. tokens may be nil for a client that
// only ever hits public endpoints.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Request performs one call and normalizes the outcome into an Envelope.
//
// Header merge order: JSON content type first, then the bearer token when
// the token source has one, then caller-supplied headers (caller wins on
// conflict). Response handling follows the content type: JSON bodies are
// parsed only when non-empty (an empty body is a nil-data success, not a
// parse error); anything else is carried as opaque text.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, body any, headers http.Header) Envelope {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Failure(0, "encode request body: "+err.Error())
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, rdr)
	if err != nil {
		return Failure(0, "build request: "+err.Error())
	}

	req.Header.Set("Content-Type", "application/json")
	var sentToken bool
	if c.tokens != nil {
		if tok, ok := c.tokens.Token(); ok {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+tok)
			sentToken = true
		}
	}
	for k, vs := range headers {
		req.Header[http.CanonicalHeaderKey(k)] = vs
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "endpoint", endpoint, "err", err)
		return Failure(0, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(resp.StatusCode, "read response body: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && sentToken {
			c.invalidateToken(ctx, method, endpoint)
		}
		return Failure(resp.StatusCode, errorMessageFrom(raw, resp.StatusCode))
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			return Success(resp.StatusCode, nil)
		}
		if !json.Valid(trimmed) {
			return Failure(resp.StatusCode, "invalid JSON in response body")
		}
		return Success(resp.StatusCode, json.RawMessage(trimmed))
	}

	// Opaque text; re-encode as a JSON string so Data keeps one shape.
	quoted, _ := json.Marshal(string(raw))
	return Success(resp.StatusCode, quoted)
}

func (c *HTTPClient) Get(ctx context.Context, endpoint string) Envelope {
	return c.Request(ctx, http.MethodGet, endpoint, nil, nil)
}

func (c *HTTPClient) Post(ctx context.Context, endpoint string, body any) Envelope {
	return c.Request(ctx, http.MethodPost, endpoint, body, nil)
}

func (c *HTTPClient) Put(ctx context.Context, endpoint string, body any) Envelope {
	return c.Request(ctx, http.MethodPut, endpoint, body, nil)
}

func (c *HTTPClient) Delete(ctx context.Context, endpoint string) Envelope {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, nil)
}

// invalidateToken destroys the stored credential after the server rejected
// it. Accessors observe the authentication failure with the session already
// cleared.
func (c *HTTPClient) invalidateToken(ctx context.Context, method, endpoint string) {
	inv, ok := c.tokens.(TokenInvalidator)
	if !ok {
		return
	}
	c.log.Warn(ctx, "credential rejected, clearing session", "method", method, "endpoint", endpoint)
	inv.Invalidate()
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// errorMessageFrom extracts the most useful human-readable message from an
// error body, in priority order: a top-level "message" field, the raw body
// text, a generic status description.
func errorMessageFrom(raw []byte, status int) string {
	if msg := gjson.GetBytes(raw, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if s := strings.TrimSpace(string(raw)); s != "" {
		return s
	}
	return Failure(status, "").ErrorMessage
}
