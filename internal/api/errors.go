package api

import "fmt"

// APIError represents an HTTP error response from the Clubhouse API.
// It carries the status code and the raw response body so callers can
// distinguish, for example, a missing resource from a validation failure.
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
