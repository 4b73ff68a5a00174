package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"internlink-gateway/internal/domain"
)

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Title: "Backend Intern", TypeOfProject: "internship",
			Category: &domain.Category{Name: "Software"},
			Company:  &domain.OrgProfile{Name: "TechHub Pvt Ltd"}},
		{ID: 2, Title: "Marketing Assistant", TypeOfProject: "part-time",
			Category: &domain.Category{Name: "Marketing"},
			Company:  &domain.OrgProfile{Name: "BrightAds"}},
		{ID: 3, Title: "Frontend Developer", TypeOfProject: "internship",
			Category: &domain.Category{Name: "Software"},
			Company:  &domain.OrgProfile{Name: "PixelWorks"}},
	}
}

func TestFilterListings(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		wantIDs  []int64
	}{
		{name: "no filters returns all", wantIDs: []int64{1, 2, 3}},
		{name: "category all returns all", category: "all", wantIDs: []int64{1, 2, 3}},
		{name: "query matches title case-insensitively", query: "BACKEND", wantIDs: []int64{1}},
		{name: "query matches company name", query: "pixelworks", wantIDs: []int64{3}},
		{name: "category exact match", category: "Software", wantIDs: []int64{1, 3}},
		{name: "category matches type_of_project fallback", category: "part-time", wantIDs: []int64{2}},
		{name: "query and category combine", query: "intern", category: "Software", wantIDs: []int64{1}},
		{name: "no match", query: "astronaut", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterListings(sampleListings(), tt.query, tt.category)
			var ids []int64
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterOrgs(t *testing.T) {
	orgs := []domain.OrgProfile{
		{ID: 1, Name: "Kathmandu College"},
		{ID: 2, User: &domain.User{Name: "Pokhara Institute"}},
	}

	got := FilterOrgs(orgs, "pokhara")
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(2), got[0].ID)
	}

	assert.Len(t, FilterOrgs(orgs, ""), 2)
}
