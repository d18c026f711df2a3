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

	"github.com/sirupsen/logrus"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.clubhouse.io"
	DefaultTimeout = 30 * time.Second
)

// Client is the HTTP API client. It builds authenticated request URLs
// from path segments, dispatches them, and classifies responses. The
// configuration is immutable after New returns; a Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	ignored    map[int]struct{}
	log        logrus.FieldLogger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(rawurl string) Option {
	return func(c *Client) {
		c.baseURL = rawurl
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithIgnoredStatusCodes sets HTTP status codes above 299 that are
// treated as success instead of producing an error.
func WithIgnoredStatusCodes(codes ...int) Option {
	return func(c *Client) {
		for _, code := range codes {
			c.ignored[code] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for error reporting.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a new API client.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		ignored: make(map[int]struct{}),
		log:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	return c, nil
}

// RequestOption customizes a single outgoing request. Headers and query
// parameters are applied verbatim to the request being built.
type RequestOption func(*requestConfig)

// requestConfig holds per-request passthrough settings.
type requestConfig struct {
	header http.Header
	query  url.Values
}

// WithHeader adds a header to a single request.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.header.Set(key, value)
	}
}

// WithQuery adds a query parameter to a single request.
func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.query.Add(key, value)
	}
}

// WithQueryValues adds a set of query parameters to a single request.
func WithQueryValues(values url.Values) RequestOption {
	return func(rc *requestConfig) {
		for key, vs := range values {
			for _, v := range vs {
				rc.query.Add(key, v)
			}
		}
	}
}

// Response is the normalized result of a dispatched request. Next carries
// the rel="next" target from the Link header when the endpoint has more
// pages, as a server-relative reference.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Next       string
}

// Decode unmarshals the response body into v. It is a no-op for 204
// responses, which carry no parseable body.
func (r *Response) Decode(v any) error {
	if r.StatusCode == http.StatusNoContent || v == nil {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Do dispatches a request built from the given path segments. The body is
// always JSON-serialized, even when nil. Responses with a status code
// above 299 that is not in the ignored set are logged and returned as an
// *APIError; transport and serialization failures propagate as-is.
func (c *Client) Do(ctx context.Context, method string, body any, segments []any, opts ...RequestOption) (*Response, error) {
	path, err := joinPath(segments)
	if err != nil {
		return nil, err
	}
	return c.DoURL(ctx, method, c.baseURL+path, body, opts...)
}

// DoURL dispatches a request against an already-constructed URL. The API
// token is appended as a query parameter, with "?" when the URL has no
// query string yet and "&" otherwise.
func (c *Client) DoURL(ctx context.Context, method, rawurl string, body any, opts ...RequestOption) (*Response, error) {
	rc := &requestConfig{
		header: make(http.Header),
		query:  make(url.Values),
	}
	for _, opt := range opts {
		opt(rc)
	}

	rawurl = appendQuery(rawurl, rc.query)
	authurl := rawurl + querySeparator(rawurl) + "token=" + url.QueryEscape(c.token)

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, authurl, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range rc.header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode > 299 {
		if _, ignore := c.ignored[resp.StatusCode]; !ignore {
			c.log.WithFields(logrus.Fields{
				"method":  method,
				"url":     rawurl,
				"status":  resp.StatusCode,
				"content": string(respBody),
			}).Error("API request failed")
			return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Next:       nextLink(resp.Header.Get("Link")),
	}, nil
}
