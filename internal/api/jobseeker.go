package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"internlink-gateway/internal/domain"
)

// GetJobseekerProfile returns the student's profile with its sub-record
// collections, or ErrNotFound when none has been created yet (login uses
// that to route students to profile creation).
func (c *Client) GetJobseekerProfile(ctx context.Context) (domain.JobseekerProfile, error) {
	var env dataEnvelope[domain.JobseekerProfile]
	err := c.get(ctx, "/api/v1/jobseeker/profile", &env)
	return env.Data, err
}

func (c *Client) SaveJobseekerProfile(ctx context.Context, p domain.JobseekerProfile) (domain.JobseekerProfile, error) {
	var env dataEnvelope[domain.JobseekerProfile]
	err := c.post(ctx, "/api/v1/jobseeker/profile", p, &env)
	return env.Data, err
}

// Each sub-record collection follows the same contract: a row with an ID is
// updated in place (PUT .../{id}), a row without one is created (POST), and
// Remove deletes persisted rows before dropping them locally.

func (c *Client) SaveEducation(ctx context.Context, e domain.Education) error {
	if e.ID != 0 {
		return c.put(ctx, fmt.Sprintf("/api/v1/jobseeker/education/%d", e.ID), e, nil)
	}
	return c.post(ctx, "/api/v1/jobseeker/education", e, nil)
}

func (c *Client) DeleteEducation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/jobseeker/education/%d", id))
}

func (c *Client) SaveExperience(ctx context.Context, w domain.WorkExperience) error {
	w.Normalize()
	if w.ID != 0 {
		return c.put(ctx, fmt.Sprintf("/api/v1/jobseeker/experience/%d", w.ID), w, nil)
	}
	return c.post(ctx, "/api/v1/jobseeker/experience", w, nil)
}

func (c *Client) DeleteExperience(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/jobseeker/experience/%d", id))
}

func (c *Client) SaveCertification(ctx context.Context, ce domain.Certification) error {
	ce.Normalize()
	if ce.ID != 0 {
		return c.put(ctx, fmt.Sprintf("/api/v1/jobseeker/certifications/%d", ce.ID), ce, nil)
	}
	return c.post(ctx, "/api/v1/jobseeker/certifications", ce, nil)
}

func (c *Client) DeleteCertification(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/jobseeker/certifications/%d", id))
}

func (c *Client) SavePortfolioProject(ctx context.Context, p domain.PortfolioProject) error {
	p.Normalize()
	if p.ID != 0 {
		return c.put(ctx, fmt.Sprintf("/api/v1/jobseeker/projects/%d", p.ID), p, nil)
	}
	return c.post(ctx, "/api/v1/jobseeker/projects", p, nil)
}

func (c *Client) DeletePortfolioProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/jobseeker/projects/%d", id))
}

// saveAll fans the per-row saves out concurrently, the way the profile forms
// issue one request per row on Save All. Rows keep going after a failure;
// the first error is what the caller reports (generically, no per-row blame).
func saveAll[T any](ctx context.Context, rows []T, save func(context.Context, T) error) error {
	// Plain Group, not WithContext: one bad row must not cancel its siblings.
	var g errgroup.Group
	for _, row := range rows {
		g.Go(func() error {
			return save(ctx, row)
		})
	}
	return g.Wait()
}

func (c *Client) SaveAllEducation(ctx context.Context, rows []domain.Education) error {
	return saveAll(ctx, rows, c.SaveEducation)
}

func (c *Client) SaveAllExperience(ctx context.Context, rows []domain.WorkExperience) error {
	return saveAll(ctx, rows, c.SaveExperience)
}

func (c *Client) SaveAllCertifications(ctx context.Context, rows []domain.Certification) error {
	return saveAll(ctx, rows, c.SaveCertification)
}

func (c *Client) SaveAllPortfolioProjects(ctx context.Context, rows []domain.PortfolioProject) error {
	return saveAll(ctx, rows, c.SavePortfolioProject)
}
