// Package api provides HTTP client functionality for communicating with the
// Clubhouse API. It handles URL construction from path segments, token
// authentication, request/response serialization, and cursor-based pagination.
//
// # URL Construction
//
// Request URLs are assembled from a list of path segments. Each segment is
// stringified, stripped of surrounding slashes, and joined with "/". The
// API path prefix is prepended exactly once: when the first segment already
// starts with it, no second copy is added. This lets pagination cursors,
// which arrive as fully-prefixed references, travel through the same
// dispatch path as ordinary segment lists:
//
//	c.Do(ctx, "GET", nil, []any{"epics", 42})         // /api/v3/epics/42
//	c.Do(ctx, "GET", nil, []any{"/api/v3/epics/42"})  // /api/v3/epics/42
//
// # Authentication
//
// The API token is appended to every request URL as a query parameter,
// using "?" when the URL has no query string yet and "&" otherwise.
//
// # Pagination
//
// Collection endpoints advertise further pages through the Link response
// header. [List] follows rel="next" references until the header is absent,
// merging all pages into a single slice. Search endpoints paginate through
// an in-body cursor instead; callers dispatch those cursors themselves.
//
// # Error Handling
//
// Responses with a status code above 299 are returned as an [*APIError]
// carrying the status code and raw body, unless the code is in the
// client's ignored set. Transport failures and JSON decoding failures
// propagate unchanged.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
