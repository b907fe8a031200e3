package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	v1 "github.com/kubev2v/search-task-gang/api/v1"
	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
)

const (
	searchesPath = "/api/v1/searches"
	healthPath   = "/api/v1/health"

	defaultTimeout = 60 * time.Second
)

type ClientOption func(*Client)

// WithHTTPClient replaces the default http client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// Client calls the search API of a running search-gang server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs words against inputs on the server
// POST /api/v1/searches
func (c *Client) Search(ctx context.Context, words, inputs []string) (*v1.SearchResponse, error) {
	body, err := json.Marshal(v1.SearchRequest{Words: words, Inputs: inputs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	zap.S().Named("client").Debugw("search", "words", len(words), "inputs", len(inputs))

	resp, err := c.do(ctx, http.MethodPost, searchesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var out v1.SearchResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to decode search response: %w", err)
		}
		return &out, nil
	case http.StatusBadRequest:
		return nil, srvErrors.NewValidationError("%s", readError(resp.Body))
	default:
		return nil, fmt.Errorf("failed to run search: %s: %s", resp.Status, readError(resp.Body))
	}
}

// Health returns the server status
// GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*v1.Health, error) {
	resp, err := c.do(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get health: %s", resp.Status)
	}

	var out v1.Health
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	return resp, nil
}

// readError extracts the "error" field of a JSON error body.
func readError(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 64*1024))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Error == "" {
		return strings.TrimSpace(string(data))
	}
	return body.Error
}
