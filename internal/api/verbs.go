package api

import (
	"context"
	"net/http"
)

// Create issues a POST with the given body and decodes the response
// into result.
func (c *Client) Create(ctx context.Context, body, result any, segments []any, opts ...RequestOption) error {
	resp, err := c.Do(ctx, http.MethodPost, body, segments, opts...)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// Fetch issues a GET and decodes the response into result.
func (c *Client) Fetch(ctx context.Context, result any, segments []any, opts ...RequestOption) error {
	resp, err := c.Do(ctx, http.MethodGet, nil, segments, opts...)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// Update issues a PUT with the given body and decodes the response
// into result.
func (c *Client) Update(ctx context.Context, body, result any, segments []any, opts ...RequestOption) error {
	resp, err := c.Do(ctx, http.MethodPut, body, segments, opts...)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// Delete issues a DELETE and returns the raw response.
func (c *Client) Delete(ctx context.Context, segments []any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, nil, segments, opts...)
}

// List issues a GET against a collection endpoint and follows pagination
// until the server stops advertising a next page. Each page is decoded as
// a JSON array and the items are merged in order. The next-page reference
// is dispatched through the regular path handling, so an already-prefixed
// cursor is used as-is.
func List[T any](ctx context.Context, c *Client, segments []any, opts ...RequestOption) ([]T, error) {
	resp, err := c.Do(ctx, http.MethodGet, nil, segments, opts...)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := resp.Decode(&items); err != nil {
		return nil, err
	}

	for resp.Next != "" {
		resp, err = c.Do(ctx, http.MethodGet, nil, []any{resp.Next})
		if err != nil {
			return nil, err
		}

		var page []T
		if err := resp.Decode(&page); err != nil {
			return nil, err
		}
		items = append(items, page...)
	}

	return items, nil
}
