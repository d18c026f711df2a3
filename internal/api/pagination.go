package api

import (
	"net/url"
	"strings"
)

// nextLink extracts the rel="next" target from an RFC 5988 Link header
// and normalizes it to a server-relative reference (path plus query).
// Returns empty string when no next link is present.
//
// Format: <https://api.clubhouse.io/...?next=abc>; rel="next", <...>; rel="last"
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)

		// Each part is: <url>; rel="type"
		pieces := strings.SplitN(part, ";", 2)
		if len(pieces) != 2 {
			continue
		}

		urlPart := strings.TrimSpace(pieces[0])
		relPart := strings.TrimSpace(pieces[1])

		if !strings.Contains(relPart, `rel="next"`) {
			continue
		}

		if strings.HasPrefix(urlPart, "<") && strings.HasSuffix(urlPart, ">") {
			return relativeReference(urlPart[1 : len(urlPart)-1])
		}
	}

	return ""
}

// relativeReference strips the scheme and host from an absolute URL,
// keeping the path and query. The pagination loop dispatches cursors as
// path segments against the configured base URL, so absolute cursor URLs
// are reduced to their server-relative form. Relative references pass
// through unchanged.
func relativeReference(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil || u.Host == "" {
		return rawurl
	}
	return u.RequestURI()
}
