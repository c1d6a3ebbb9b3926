// Package mealdb talks to TheMealDB REST API and decodes its loosely typed
// records into fixed Go types.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwiater/mealdb/internal/appconfig"
)

// Fetcher performs a GET against an API endpoint path (for example
// "/random.php") and decodes the JSON body into out.
type Fetcher interface {
	Get(ctx context.Context, endpoint string, out any) error
}

// Client is the HTTP-backed Fetcher.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client rooted at baseURL. A zero timeout leaves the
// request deadline to the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = appconfig.DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientFromConfig builds a Client from the application configuration.
func NewClientFromConfig(cfg appconfig.Config) *Client {
	return NewClient(cfg.BaseURLOrDefault(), cfg.RequestTimeout())
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues the request and decodes the response. Transport failures and
// non-2xx statuses return *NetworkError; undecodable bodies return *ParseError.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "mealdb-mcp/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("HTTP error! status: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}
