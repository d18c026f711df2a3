package clubhouse

import (
	"context"
	"net/http"

	"github.com/clubhouse/client-go/internal/api"
)

// Client is the main Clubhouse client. It exposes typed methods for the
// resources the API serves and generic verb methods for endpoints that
// have no typed wrapper yet.
type Client struct {
	api *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(token string, cfg *clientConfig) (*api.Client, error) {
	var apiOpts []api.Option
	if cfg.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(cfg.baseURL))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if len(cfg.ignoredStatusCodes) > 0 {
		apiOpts = append(apiOpts, api.WithIgnoredStatusCodes(cfg.ignoredStatusCodes...))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	return api.New(token, apiOpts...)
}

// New creates a new Clubhouse client with the given API token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(token, cfg)
	if err != nil {
		return nil, err //coverage:ignore
	}

	return &Client{api: apiClient}, nil
}

// Get issues a GET request built from the given path segments and returns
// the decoded response.
func (c *Client) Get(ctx context.Context, segments []any, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, segments, opts...)
}

// Post issues a POST request built from the given path segments and
// returns the decoded response.
func (c *Client) Post(ctx context.Context, segments []any, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, segments, opts...)
}

// Put issues a PUT request built from the given path segments and returns
// the decoded response.
func (c *Client) Put(ctx context.Context, segments []any, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodPut, segments, opts...)
}

// Delete issues a DELETE request built from the given path segments and
// returns the decoded response.
func (c *Client) Delete(ctx context.Context, segments []any, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodDelete, segments, opts...)
}

// request dispatches a bodyless request and decodes the response into a
// map. Responses with no content yield an empty map rather than nil.
func (c *Client) request(ctx context.Context, method string, segments []any, opts ...RequestOption) (map[string]any, error) {
	resp, err := c.api.Do(ctx, method, nil, segments, opts...)
	if err != nil {
		return nil, wrapError(err)
	}

	result := make(map[string]any)
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}
