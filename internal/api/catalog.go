package api

import (
	"context"

	"internlink-gateway/internal/domain"
)

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var env dataEnvelope[[]domain.Category]
	err := c.get(ctx, "/api/v1/categories", &env)
	return env.Data, err
}

func (c *Client) Companies(ctx context.Context) ([]domain.OrgProfile, error) {
	var env dataEnvelope[[]domain.OrgProfile]
	err := c.get(ctx, "/api/v1/all/companies", &env)
	return env.Data, err
}

func (c *Client) Colleges(ctx context.Context) ([]domain.OrgProfile, error) {
	var env dataEnvelope[[]domain.OrgProfile]
	err := c.get(ctx, "/api/v1/all/colleges", &env)
	return env.Data, err
}
