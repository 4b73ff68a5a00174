package api

import (
	"context"
	"fmt"

	"internlink-gateway/internal/domain"
)

// PendingUsers is the only paginated view in the client; the backend's
// envelope carries total and per_page for the page-count math.
func (c *Client) PendingUsers(ctx context.Context, page int) (domain.Page[domain.User], error) {
	if page < 1 {
		page = 1
	}
	var out domain.Page[domain.User]
	err := c.get(ctx, fmt.Sprintf("/api/v1/admin/pending-users?page=%d", page), &out)
	return out, err
}

func (c *Client) ApproveUser(ctx context.Context, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/admin/users/%d/approve", userID), nil, nil)
}

// RejectUser submits the free-text reason collected by the reject modal.
func (c *Client) RejectUser(ctx context.Context, userID int64, reason string) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/admin/users/%d/reject", userID),
		map[string]string{"reason": reason}, nil)
}

func (c *Client) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var env dataEnvelope[domain.Category]
	err := c.post(ctx, "/api/v1/category", map[string]string{"name": name}, &env)
	return env.Data, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	var env dataEnvelope[domain.Category]
	err := c.put(ctx, fmt.Sprintf("/api/v1/category/%d", id), map[string]string{"name": name}, &env)
	return env.Data, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/category/%d", id))
}
