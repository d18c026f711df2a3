package clubhouse

import (
	"context"
	"time"

	"github.com/clubhouse/client-go/internal/api"
)

// Workflow states shared by milestones and epics.
const (
	StateToDo       = "to do"
	StateInProgress = "in progress"
	StateDone       = "done"
)

// Milestone represents a Clubhouse milestone.
type Milestone struct {
	ID                  int64           `json:"id"`
	EntityType          string          `json:"entity_type"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	State               string          `json:"state"`
	Position            int64           `json:"position"`
	Started             bool            `json:"started"`
	StartedAt           *time.Time      `json:"started_at"`
	StartedAtOverride   *time.Time      `json:"started_at_override"`
	Completed           bool            `json:"completed"`
	CompletedAt         *time.Time      `json:"completed_at"`
	CompletedAtOverride *time.Time      `json:"completed_at_override"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Categories          []Category      `json:"categories"`
	Stats               *MilestoneStats `json:"stats,omitempty"`
	AppURL              string          `json:"app_url"`
}

// MilestoneStats represents aggregate statistics for a milestone.
type MilestoneStats struct {
	AverageCycleTime int64 `json:"average_cycle_time"`
	AverageLeadTime  int64 `json:"average_lead_time"`
}

// CreateMilestoneParams represents the POST /api/v3/milestones request.
type CreateMilestoneParams struct {
	Name                string           `json:"name"`
	Description         string           `json:"description,omitempty"`
	State               string           `json:"state,omitempty"`
	StartedAtOverride   *time.Time       `json:"started_at_override,omitempty"`
	CompletedAtOverride *time.Time       `json:"completed_at_override,omitempty"`
	Categories          []CategoryParams `json:"categories,omitempty"`
}

// UpdateMilestoneParams represents the PUT /api/v3/milestones/{id} request.
// Zero-valued fields are omitted from the payload.
type UpdateMilestoneParams struct {
	Name                string           `json:"name,omitempty"`
	Description         string           `json:"description,omitempty"`
	State               string           `json:"state,omitempty"`
	BeforeID            *int64           `json:"before_id,omitempty"`
	AfterID             *int64           `json:"after_id,omitempty"`
	StartedAtOverride   *time.Time       `json:"started_at_override,omitempty"`
	CompletedAtOverride *time.Time       `json:"completed_at_override,omitempty"`
	Categories          []CategoryParams `json:"categories,omitempty"`
}

// CreateMilestone creates a new milestone.
func (c *Client) CreateMilestone(ctx context.Context, params *CreateMilestoneParams, opts ...RequestOption) (*Milestone, error) {
	var milestone Milestone
	if err := c.api.Create(ctx, params, &milestone, []any{"milestones"}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &milestone, nil
}

// GetMilestone fetches a milestone by ID.
func (c *Client) GetMilestone(ctx context.Context, id int64, opts ...RequestOption) (*Milestone, error) {
	var milestone Milestone
	if err := c.api.Fetch(ctx, &milestone, []any{"milestones", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &milestone, nil
}

// UpdateMilestone updates an existing milestone.
func (c *Client) UpdateMilestone(ctx context.Context, id int64, params *UpdateMilestoneParams, opts ...RequestOption) (*Milestone, error) {
	var milestone Milestone
	if err := c.api.Update(ctx, params, &milestone, []any{"milestones", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &milestone, nil
}

// DeleteMilestone deletes a milestone by ID.
func (c *Client) DeleteMilestone(ctx context.Context, id int64, opts ...RequestOption) error {
	_, err := c.api.Delete(ctx, []any{"milestones", id}, opts...)
	return wrapError(err)
}

// ListMilestones returns all milestones, following pagination until every
// page has been merged.
func (c *Client) ListMilestones(ctx context.Context, opts ...RequestOption) ([]Milestone, error) {
	milestones, err := api.List[Milestone](ctx, c.api, []any{"milestones"}, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	return milestones, nil
}

// ListMilestoneEpics returns all epics associated with a milestone.
func (c *Client) ListMilestoneEpics(ctx context.Context, id int64, opts ...RequestOption) ([]Epic, error) {
	epics, err := api.List[Epic](ctx, c.api, []any{"milestones", id, "epics"}, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	return epics, nil
}
