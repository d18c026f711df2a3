package clubhouse

import (
	"context"
	"time"

	"github.com/clubhouse/client-go/internal/api"
)

// Member represents a member of the Clubhouse workspace. Member IDs are
// UUID strings, unlike the numeric IDs of other resources.
type Member struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	Role       string    `json:"role"`
	Disabled   bool      `json:"disabled"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Profile represents the public profile attached to a member.
type Profile struct {
	ID                     string `json:"id"`
	EntityType             string `json:"entity_type"`
	Name                   string `json:"name"`
	MentionName            string `json:"mention_name"`
	EmailAddress           string `json:"email_address"`
	GravatarHash           string `json:"gravatar_hash"`
	Deactivated            bool   `json:"deactivated"`
	TwoFactorAuthActivated bool   `json:"two_factor_auth_activated"`
}

// MemberInfo represents the GET /api/v3/member response describing the
// member the API token belongs to.
type MemberInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MentionName string    `json:"mention_name"`
	Workspace   Workspace `json:"workspace2"`
}

// Workspace identifies the workspace an API token is scoped to.
type Workspace struct {
	URLSlug       string `json:"url_slug"`
	EstimateScale []int  `json:"estimate_scale"`
}

// GetCurrentMemberInfo fetches information about the member the API token
// belongs to. Useful as a cheap token validity check.
func (c *Client) GetCurrentMemberInfo(ctx context.Context, opts ...RequestOption) (*MemberInfo, error) {
	var info MemberInfo
	if err := c.api.Fetch(ctx, &info, []any{"member"}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &info, nil
}

// GetMember fetches a workspace member by UUID.
func (c *Client) GetMember(ctx context.Context, id string, opts ...RequestOption) (*Member, error) {
	var member Member
	if err := c.api.Fetch(ctx, &member, []any{"members", id}, opts...); err != nil {
		return nil, wrapError(err)
	}
	return &member, nil
}

// ListMembers returns all members of the workspace.
func (c *Client) ListMembers(ctx context.Context, opts ...RequestOption) ([]Member, error) {
	members, err := api.List[Member](ctx, c.api, []any{"members"}, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	return members, nil
}
