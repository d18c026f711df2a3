package clubhouse

import (
	"context"
	"time"

	"github.com/clubhouse/client-go/internal/api"
)

// CategoryTypeMilestone is the only category type the API currently serves.
const CategoryTypeMilestone = "milestone"

// Category represents a Clubhouse category.
type Category struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entity_type"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	Type       string    `json:"type"`
	ExternalID string    `json:"external_id"`
	Archived   bool      `json:"archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryParams represents the POST /api/v3/categories request. It is
// also the shape milestone create and update requests embed to associate
// categories inline.
type CategoryParams struct {
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Type       string `json:"type,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
}

// UpdateCategoryParams represents the PUT /api/v3/categories/{id} request.
// Zero-valued fields are omitted from the payload.
type UpdateCategoryParams struct {
	Name     string `json:"name,omitempty"`
	Color    string `json:"color,omitempty"`
	Archived *bool  `json:"archived,omitempty"`
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(ctx context.Context, params *CategoryParams, opts ...RequestOption) (*Category, error) {
	var category Category
	if err := c.api.Create(ctx, params, &category, []any{"categories"}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &category, nil
}

// GetCategory fetches a category by ID.
func (c *Client) GetCategory(ctx context.Context, id int64, opts ...RequestOption) (*Category, error) {
	var category Category
	if err := c.api.Fetch(ctx, &category, []any{"categories", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, params *UpdateCategoryParams, opts ...RequestOption) (*Category, error) {
	var category Category
	if err := c.api.Update(ctx, params, &category, []any{"categories", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &category, nil
}

// DeleteCategory deletes a category by ID.
func (c *Client) DeleteCategory(ctx context.Context, id int64, opts ...RequestOption) error {
	_, err := c.api.Delete(ctx, []any{"categories", id}, opts...)
	return wrapError(err)
}

// ListCategories returns all categories, following pagination until every
// page has been merged.
func (c *Client) ListCategories(ctx context.Context, opts ...RequestOption) ([]Category, error) {
	categories, err := api.List[Category](ctx, c.api, []any{"categories"}, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	return categories, nil
}

// ListCategoryMilestones returns all milestones associated with a category.
func (c *Client) ListCategoryMilestones(ctx context.Context, id int64, opts ...RequestOption) ([]Milestone, error) {
	milestones, err := api.List[Milestone](ctx, c.api, []any{"categories", id, "milestones"}, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	return milestones, nil
}
