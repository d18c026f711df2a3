package clubhouse

import (
	"errors"
	"fmt"

	"github.com/clubhouse/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token is provided.
	ErrMissingToken = errors.New("API token is required")

	// ErrUnauthorized is returned when the API token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API token")

	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnprocessable is returned when the API rejects the request payload.
	ErrUnprocessable = errors.New("unprocessable request")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error from the Clubhouse API. It is the
// only error type produced for non-success responses; transport failures
// and JSON decoding failures propagate unchanged.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 422:
		return target == ErrUnprocessable
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, 404)
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, 401)
}

// IsUnprocessable reports whether err is an API error with status 422.
func IsUnprocessable(err error) bool {
	return hasStatus(err, 422)
}

// IsRateLimited reports whether err is an API error with status 429.
func IsRateLimited(err error) bool {
	return hasStatus(err, 429)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
		}
	}

	return err
}
