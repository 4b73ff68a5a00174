package api

import (
	"context"
	"fmt"
	"net/url"

	"internlink-gateway/internal/domain"
)

type ListingInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	TypeOfProject  string   `json:"type_of_project"`
	Status         string   `json:"status"`
	Requirements   []string `json:"requirements"`
	SkillsRequired []string `json:"skills_required"`
	Deadline       string   `json:"deadline"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	CategoryID     int64    `json:"category_id"`
}

func (c *Client) Listings(ctx context.Context, query, category string) ([]domain.Listing, error) {
	q := url.Values{}
	if query != "" {
		q.Set("search", query)
	}
	if category != "" && category != "all" {
		q.Set("category", category)
	}
	path := "/api/v1/projects"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var env dataEnvelope[[]domain.Listing]
	err := c.get(ctx, path, &env)
	return env.Data, err
}

func (c *Client) Listing(ctx context.Context, id int64) (domain.Listing, error) {
	var env dataEnvelope[domain.Listing]
	err := c.get(ctx, fmt.Sprintf("/api/v1/projects/%d", id), &env)
	return env.Data, err
}

func (c *Client) ListingCount(ctx context.Context) (int, error) {
	var out struct {
		Total int `json:"total"`
	}
	err := c.get(ctx, "/api/v1/projects/count/total", &out)
	return out.Total, err
}

func (c *Client) CreateListing(ctx context.Context, in ListingInput) (domain.Listing, error) {
	var env dataEnvelope[domain.Listing]
	err := c.post(ctx, "/api/v1/projects", in, &env)
	return env.Data, err
}

func (c *Client) UpdateListing(ctx context.Context, id int64, in ListingInput) (domain.Listing, error) {
	var env dataEnvelope[domain.Listing]
	err := c.put(ctx, fmt.Sprintf("/api/v1/projects/%d", id), in, &env)
	return env.Data, err
}

func (c *Client) DeleteListing(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/projects/%d", id))
}

// MyListings returns the authenticated company's own postings.
func (c *Client) MyListings(ctx context.Context) ([]domain.Listing, error) {
	var env dataEnvelope[[]domain.Listing]
	err := c.get(ctx, "/api/v1/my-projects", &env)
	return env.Data, err
}

func (c *Client) Apply(ctx context.Context, projectID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/projects/%d/apply", projectID), nil, nil)
}

func (c *Client) SaveListing(ctx context.Context, projectID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/projects/%d/save", projectID), nil, nil)
}

func (c *Client) UnsaveListing(ctx context.Context, projectID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/projects/%d/unsave", projectID), nil, nil)
}

// MyApplications returns the student's applications; the ids drive the
// Applied button state on listing pages.
func (c *Client) MyApplications(ctx context.Context) ([]domain.Applicant, error) {
	var env dataEnvelope[[]domain.Applicant]
	err := c.get(ctx, "/api/v1/my-applications", &env)
	return env.Data, err
}

func (c *Client) SavedListings(ctx context.Context) ([]domain.Listing, error) {
	var env dataEnvelope[[]domain.Listing]
	err := c.get(ctx, "/api/v1/saved-projects", &env)
	return env.Data, err
}

func (c *Client) Applicants(ctx context.Context, projectID int64) ([]domain.Applicant, error) {
	var env dataEnvelope[[]domain.Applicant]
	err := c.get(ctx, fmt.Sprintf("/api/v1/projects/%d/applicants", projectID), &env)
	return env.Data, err
}

func (c *Client) UpdateApplicantStatus(ctx context.Context, projectID, applicantID int64, status string) error {
	if !domain.ValidApplicantStatus(status) {
		return fmt.Errorf("invalid applicant status %q", status)
	}
	return c.put(ctx,
		fmt.Sprintf("/api/v1/projects/%d/applicants/%d/status", projectID, applicantID),
		map[string]string{"status": status}, nil)
}
