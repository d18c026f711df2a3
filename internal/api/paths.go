package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PathPrefix is the fixed path prefix every Clubhouse API endpoint lives
// under. Requests whose first segment does not already carry it have it
// prepended during path construction.
const PathPrefix = "/api/v3"

// segmentString converts a single path segment to its string form.
// Segments are commonly strings or numeric identifiers.
func segmentString(segment any) string {
	switch s := segment.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// joinPath builds the request path from the given segments. The API path
// prefix is prepended unless the first segment already starts with it, so
// the resulting path always contains exactly one copy of the prefix.
// Leading and trailing slashes are stripped from each segment before
// joining. Pagination cursors arrive as a single prefix-anchored segment
// with a query string attached and pass through unchanged.
func joinPath(segments []any) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("at least one path segment is required")
	}

	parts := make([]string, 0, len(segments)+1)
	if !strings.HasPrefix(segmentString(segments[0]), PathPrefix) {
		parts = append(parts, strings.Trim(PathPrefix, "/"))
	}
	for _, segment := range segments {
		parts = append(parts, strings.Trim(segmentString(segment), "/"))
	}

	return "/" + strings.Join(parts, "/"), nil
}

// appendQuery attaches extra query parameters to rawurl, using "?" when
// the URL has no query string yet and "&" otherwise.
func appendQuery(rawurl string, values url.Values) string {
	if len(values) == 0 {
		return rawurl
	}
	return rawurl + querySeparator(rawurl) + values.Encode()
}

// querySeparator reports the separator to use when appending a query
// parameter to rawurl: "&" if the URL already has a query component,
// "?" otherwise.
func querySeparator(rawurl string) string {
	if u, err := url.Parse(rawurl); err == nil && u.RawQuery != "" {
		return "&"
	}
	return "?"
}
