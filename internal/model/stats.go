package model

import (
	"sort"
	"strings"
)

// ProjectSummary describes a Weblate project from the project list endpoint.
type ProjectSummary struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	WebURL string `json:"web_url"`
}

// DisplayName returns the project name, falling back to the slug
func (p ProjectSummary) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Slug
}

// ComponentSummary describes a translation component within a project.
type ComponentSummary struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	WebURL string `json:"web_url"`
}

// DisplayName returns the component name, falling back to the slug
func (c ComponentSummary) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Slug
}

// Stats holds a Weblate statistics payload for a project, component, or
// language. Percentages are 0-100 as reported by the API.
type Stats struct {
	Name              string  `json:"name"`
	Code              string  `json:"code"`
	Total             int     `json:"total"`
	Translated        int     `json:"translated"`
	TranslatedPercent float64 `json:"translated_percent"`
	Fuzzy             int     `json:"fuzzy"`
	FuzzyPercent      float64 `json:"fuzzy_percent"`
	Failing           int     `json:"failing"`
	FailingPercent    float64 `json:"failing_percent"`
}

// UntranslatedPercent returns the share of strings that are neither translated
// nor fuzzy, clamped to the 0-100 range.
func (s Stats) UntranslatedPercent() float64 {
	pct := 100 - s.TranslatedPercent - s.FuzzyPercent
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ProjectOverview is a list row: a project with its translated percentage for
// the selected language.
type ProjectOverview struct {
	Project           ProjectSummary
	TranslatedPercent float64
}

// ComponentOverview is a list row for a component within a project.
type ComponentOverview struct {
	Component         ComponentSummary
	TranslatedPercent float64
}

// ProjectStats bundles a project with its statistics and per-component rows,
// ordered by translated percentage descending.
type ProjectStats struct {
	Project    ProjectSummary
	Stats      Stats
	Components []ComponentOverview
}

// SortProjectOverviews orders rows by translated percentage descending, with
// name as tie-breaker for a stable listing.
func SortProjectOverviews(rows []ProjectOverview) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TranslatedPercent != rows[j].TranslatedPercent {
			return rows[i].TranslatedPercent > rows[j].TranslatedPercent
		}
		return rows[i].Project.DisplayName() < rows[j].Project.DisplayName()
	})
}

// SortComponentOverviews orders rows by translated percentage descending, with
// name as tie-breaker.
func SortComponentOverviews(rows []ComponentOverview) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TranslatedPercent != rows[j].TranslatedPercent {
			return rows[i].TranslatedPercent > rows[j].TranslatedPercent
		}
		return rows[i].Component.DisplayName() < rows[j].Component.DisplayName()
	})
}

// MatchesFilter reports whether the project matches a lowercase filter string.
// An empty filter matches everything.
func (p ProjectSummary) MatchesFilter(filter string) bool {
	if filter == "" {
		return true
	}
	return containsFold(p.Name, filter) || containsFold(p.Slug, filter)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
