package search

import (
	"strings"

	"internlink-gateway/internal/domain"
)

// FilterListings applies the listing pages' client-side filtering: a free-text
// query matched case-insensitively against title and company name, and an
// exact category name match where "all" (or empty) means no category filter.
func FilterListings(in []domain.Listing, query, category string) []domain.Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.TrimSpace(category)
	all := cat == "" || strings.EqualFold(cat, "all")

	var out []domain.Listing
	for _, l := range in {
		if !all && !matchesCategory(l, cat) {
			continue
		}
		if q != "" && !matchesQuery(l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesQuery(l domain.Listing, q string) bool {
	if strings.Contains(strings.ToLower(l.Title), q) {
		return true
	}
	if l.Company != nil && strings.Contains(strings.ToLower(l.Company.Name), q) {
		return true
	}
	return false
}

func matchesCategory(l domain.Listing, cat string) bool {
	if l.Category != nil && strings.EqualFold(l.Category.Name, cat) {
		return true
	}
	// Some list payloads carry the type string instead of a category record.
	return strings.EqualFold(l.TypeOfProject, cat)
}

// FilterOrgs filters the featured companies/colleges sections by name.
func FilterOrgs(in []domain.OrgProfile, query string) []domain.OrgProfile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return in
	}
	var out []domain.OrgProfile
	for _, o := range in {
		name := o.Name
		if name == "" && o.User != nil {
			name = o.User.Name
		}
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, o)
		}
	}
	return out
}
