package clubhouse

import (
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clubhouse/client-go/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL            string
	httpClient         *http.Client
	timeout            time.Duration
	ignoredStatusCodes []int
	logger             logrus.FieldLogger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithIgnoredStatusCodes sets HTTP status codes above 299 that are treated
// as success instead of producing an error. Useful for endpoints where a
// 404 is an expected outcome rather than a failure.
func WithIgnoredStatusCodes(codes ...int) Option {
	return func(c *clientConfig) {
		c.ignoredStatusCodes = append(c.ignoredStatusCodes, codes...)
	}
}

// WithLogger sets the logger used for error reporting.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *clientConfig) {
		c.logger = log
	}
}

// RequestOption customizes a single request made through the client.
type RequestOption = api.RequestOption

// WithHeader adds a header to a single request.
func WithHeader(key, value string) RequestOption {
	return api.WithHeader(key, value)
}

// WithQuery adds a query parameter to a single request.
func WithQuery(key, value string) RequestOption {
	return api.WithQuery(key, value)
}

// WithQueryValues adds a set of query parameters to a single request.
func WithQueryValues(values url.Values) RequestOption {
	return api.WithQueryValues(values)
}
