package clubhouse

import (
	"context"
	"time"

	"github.com/clubhouse/client-go/internal/api"
)

// Epic represents a Clubhouse epic.
type Epic struct {
	ID            int64      `json:"id"`
	EntityType    string     `json:"entity_type"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	State         string     `json:"state"`
	Position      int64      `json:"position"`
	MilestoneID   *int64     `json:"milestone_id"`
	Archived      bool       `json:"archived"`
	Started       bool       `json:"started"`
	StartedAt     *time.Time `json:"started_at"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	RequestedByID string     `json:"requested_by_id"`
	FollowerIDs   []string   `json:"follower_ids"`
	OwnerIDs      []string   `json:"owner_ids"`
	ExternalID    string     `json:"external_id"`
	Labels        []Label    `json:"labels"`
	Stats         *EpicStats `json:"stats,omitempty"`
	AppURL        string     `json:"app_url"`
}

// EpicStats represents aggregate story statistics for an epic.
type EpicStats struct {
	NumPoints           int64      `json:"num_points"`
	NumPointsDone       int64      `json:"num_points_done"`
	NumPointsStarted    int64      `json:"num_points_started"`
	NumStoriesDone      int64      `json:"num_stories_done"`
	NumStoriesStarted   int64      `json:"num_stories_started"`
	NumStoriesUnstarted int64      `json:"num_stories_unstarted"`
	LastStoryUpdate     *time.Time `json:"last_story_update"`
}

// Label represents a label attached to an epic.
type Label struct {
	ID         int64  `json:"id"`
	EntityType string `json:"entity_type"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	ExternalID string `json:"external_id"`
}

// LabelParams represents a label reference in create and update requests.
// An existing label is matched by name; unmatched names create new labels.
type LabelParams struct {
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
}

// CreateEpicParams represents the POST /api/v3/epics request.
type CreateEpicParams struct {
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	State         string        `json:"state,omitempty"`
	MilestoneID   *int64        `json:"milestone_id,omitempty"`
	Deadline      *time.Time    `json:"deadline,omitempty"`
	RequestedByID string        `json:"requested_by_id,omitempty"`
	FollowerIDs   []string      `json:"follower_ids,omitempty"`
	OwnerIDs      []string      `json:"owner_ids,omitempty"`
	ExternalID    string        `json:"external_id,omitempty"`
	Labels        []LabelParams `json:"labels,omitempty"`
}

// UpdateEpicParams represents the PUT /api/v3/epics/{id} request.
// Zero-valued fields are omitted from the payload.
type UpdateEpicParams struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	State       string        `json:"state,omitempty"`
	MilestoneID *int64        `json:"milestone_id,omitempty"`
	Archived    *bool         `json:"archived,omitempty"`
	BeforeID    *int64        `json:"before_id,omitempty"`
	AfterID     *int64        `json:"after_id,omitempty"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	FollowerIDs []string      `json:"follower_ids,omitempty"`
	OwnerIDs    []string      `json:"owner_ids,omitempty"`
	Labels      []LabelParams `json:"labels,omitempty"`
}

// CreateEpic creates a new epic.
func (c *Client) CreateEpic(ctx context.Context, params *CreateEpicParams, opts ...RequestOption) (*Epic, error) {
	var epic Epic
	if err := c.api.Create(ctx, params, &epic, []any{"epics"}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &epic, nil
}

// GetEpic fetches an epic by ID.
func (c *Client) GetEpic(ctx context.Context, id int64, opts ...RequestOption) (*Epic, error) {
	var epic Epic
	if err := c.api.Fetch(ctx, &epic, []any{"epics", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &epic, nil
}

// UpdateEpic updates an existing epic.
func (c *Client) UpdateEpic(ctx context.Context, id int64, params *UpdateEpicParams, opts ...RequestOption) (*Epic, error) {
	var epic Epic
	if err := c.api.Update(ctx, params, &epic, []any{"epics", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &epic, nil
}

// DeleteEpic deletes an epic by ID.
func (c *Client) DeleteEpic(ctx context.Context, id int64, opts ...RequestOption) error {
	_, err := c.api.Delete(ctx, []any{"epics", id}, opts...)
	return wrapError(err)
}

// ListEpics returns all epics, following pagination until every page has
// been merged.
func (c *Client) ListEpics(ctx context.Context, opts ...RequestOption) ([]Epic, error) {
	epics, err := api.List[Epic](ctx, c.api, []any{"epics"}, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	return epics, nil
}
