package api

import (
	"context"
	"fmt"

	"internlink-gateway/internal/domain"
)

// PublicProfile is the company/college profile page anyone can view.
func (c *Client) PublicProfile(ctx context.Context, userID int64) (domain.OrgProfile, error) {
	var env dataEnvelope[domain.OrgProfile]
	err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/profile", userID), &env)
	return env.Data, err
}

type OrgProfileInput struct {
	Description string `json:"description"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Logo        string `json:"logo,omitempty"`
}

// SaveOrgProfile creates or replaces the authenticated company/college
// profile (the backend upserts on POST /profiles).
func (c *Client) SaveOrgProfile(ctx context.Context, in OrgProfileInput) (domain.OrgProfile, error) {
	var env dataEnvelope[domain.OrgProfile]
	err := c.post(ctx, "/api/v1/profiles", in, &env)
	return env.Data, err
}

// CurrentUser fetches the authenticated account, used by pages that only
// have the token and need role/name refreshed.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var env dataEnvelope[domain.User]
	err := c.get(ctx, "/api/v1/user", &env)
	return env.Data, err
}
