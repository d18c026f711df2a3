package clubhouse

import (
	"context"

	"github.com/google/go-querystring/query"
)

// Search result detail levels.
const (
	SearchDetailFull = "full"
	SearchDetailSlim = "slim"
)

// SearchEpicsParams represents the GET /api/v3/search/epics query
// parameters. Query uses the search operator syntax the Clubhouse UI
// accepts.
type SearchEpicsParams struct {
	Query    string `url:"query"`
	PageSize int    `url:"page_size,omitempty"`
	Detail   string `url:"detail,omitempty"`
}

// EpicSearchResults represents one page of the search envelope.
type EpicSearchResults struct {
	Total int64  `json:"total"`
	Data  []Epic `json:"data"`
	Next  string `json:"next"`
}

// SearchEpics returns all epics matching the search query. The search
// endpoint paginates through an in-body next cursor rather than the Link
// header; pages are fetched until the cursor is absent and their data is
// merged in order.
func (c *Client) SearchEpics(ctx context.Context, params *SearchEpicsParams, opts ...RequestOption) ([]Epic, error) {
	values, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	reqOpts := append([]RequestOption{WithQueryValues(values)}, opts...)

	var page EpicSearchResults
	if err := c.api.Fetch(ctx, &page, []any{"search", "epics"}, reqOpts...); err != nil {
		return nil, wrapError(err)
	}

	epics := page.Data
	for page.Next != "" {
		next := page.Next
		page = EpicSearchResults{}
		if err := c.api.Fetch(ctx, &page, []any{next}); err != nil {
			return nil, wrapError(err)
		}
		epics = append(epics, page.Data...)
	}

	return epics, nil
}
