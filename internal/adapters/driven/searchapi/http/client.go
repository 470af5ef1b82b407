// Package http implements the driven.SearchAPI port against the travel
// backend's REST search endpoints.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
	"github.com/phongnickchinh/tripsearch-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout. The autocomplete
	// path degrades to the recent-search ledger on failure, so a short
	// timeout beats a hanging spinner.
	DefaultTimeout = 5 * time.Second

	searchPath  = "/search"
	resolvePath = "/resolve"

	// maxErrorBody caps how much of an error response body is read.
	maxErrorBody = 8 * 1024
)

// Ensure Client implements the interface.
var _ driven.SearchAPI = (*Client)(nil)

// Client calls the remote search backend over HTTP. It is safe for
// concurrent use.
type Client struct {
	baseURL       string
	timeout       time.Duration
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter

	mu         sync.Mutex
	httpClient *http.Client
}

// NewClient creates a search API client for the given base URL.
// A timeout of zero or less uses DefaultTimeout. The token provider is
// optional; without one, requests are sent unauthenticated.
func NewClient(baseURL string, timeout time.Duration, tokenProvider driven.TokenProvider) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		timeout:       timeout,
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(),
	}
}

// client returns the HTTP client, initializing it on first use so the
// token is fetched when first needed. Search and Resolve run from
// concurrent goroutines, so the lazy init is guarded; a failed token
// fetch is retried on the next call.
func (c *Client) client(ctx context.Context) (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		return c.httpClient, nil
	}

	var hc *http.Client
	if c.tokenProvider != nil && c.tokenProvider.IsAuthenticated() {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("get token: %w", err)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = c.timeout
	c.httpClient = hc

	return hc, nil
}

// Search performs one autocomplete request against the search endpoint.
func (c *Client) Search(
	ctx context.Context, query string, params driven.SearchParams,
) (*domain.SearchResponse, error) {
	hc, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(params.Limit))
	if params.HasBias {
		q.Set("lat", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	}
	if len(params.Types) > 0 {
		q.Set("types", strings.Join(params.Types, ","))
	}
	if params.SessionToken != "" {
		q.Set("session_token", params.SessionToken)
	}

	reqURL := c.baseURL + searchPath + "?" + q.Encode()
	logger.Debug("GET %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if err := c.checkResponse(resp, reqURL); err != nil {
		return nil, err
	}

	var result domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if result.Suggestions == nil {
		result.Suggestions = []domain.Suggestion{}
	}

	return &result, nil
}

// Resolve fetches full place details, closing the billing session
// identified by the token.
func (c *Client) Resolve(ctx context.Context, placeID, sessionToken string) (*domain.Place, error) {
	hc, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(map[string]string{"session_token": sessionToken})
	if err != nil {
		return nil, fmt.Errorf("encoding resolve request: %w", err)
	}

	reqURL := c.baseURL + resolvePath + "/" + url.PathEscape(placeID)
	logger.Debug("POST %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building resolve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if err := c.checkResponse(resp, reqURL); err != nil {
		return nil, err
	}

	var result struct {
		Place  domain.Place `json:"place"`
		Status string       `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding resolve response: %w", err)
	}

	return &result.Place, nil
}

// checkResponse converts rate-limit and non-2xx responses into typed errors.
func (c *Client) checkResponse(resp *http.Response, reqURL string) error {
	if err := c.rateLimiter.CheckResponse(resp); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := http.StatusText(resp.StatusCode)
	if body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
		var apiMsg struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(body, &apiMsg) == nil {
			if apiMsg.Message != "" {
				msg = apiMsg.Message
			} else if apiMsg.Error != "" {
				msg = apiMsg.Error
			}
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		URL:        reqURL,
	}
}
