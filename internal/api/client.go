package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// TokenSource supplies the current session token. An empty string means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client issues requests against the backend API. It is stateless apart from
// the configured base URL; the token is read from the source on every call.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// NewClient creates a client for the given base URL (e.g.
// "http://localhost:8080/api"). No timeout is configured; callers rely on the
// transport's default behavior and pass a context for cancellation.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
	}
}

// endpoint joins the base URL, a path, and optional query parameters
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Call issues a single request and decodes the Result envelope. A nil body
// sends no request body. Non-2xx responses become an *Error carrying the
// envelope's message when the error body is decodable.
func Call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*Result[T], error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := c.endpoint(path, query)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Printf("api request: %s %s id=%s", method, path, requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	log.Printf("api response: %s %s id=%s status=%d", method, path, requestID, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var envelope Result[T]
		if json.Unmarshal(raw, &envelope) == nil {
			apiErr.Message = envelope.ErrorMessage
		}
		return nil, apiErr
	}

	var envelope Result[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
	}
	return &envelope, nil
}
