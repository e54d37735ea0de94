package model

import "testing"

func TestProjectSummaryDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		project  ProjectSummary
		expected string
	}{
		{
			name:     "name preferred over slug",
			project:  ProjectSummary{Slug: "anaconda", Name: "Anaconda"},
			expected: "Anaconda",
		},
		{
			name:     "fallback to slug",
			project:  ProjectSummary{Slug: "anaconda"},
			expected: "anaconda",
		},
		{
			name:     "empty project",
			project:  ProjectSummary{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUntranslatedPercent(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected float64
	}{
		{
			name:     "typical split",
			stats:    Stats{TranslatedPercent: 70, FuzzyPercent: 10},
			expected: 20,
		},
		{
			name:     "fully translated",
			stats:    Stats{TranslatedPercent: 100},
			expected: 0,
		},
		{
			name:     "rounding overshoot clamps to zero",
			stats:    Stats{TranslatedPercent: 99.6, FuzzyPercent: 0.5},
			expected: 0,
		},
		{
			name:     "empty stats",
			stats:    Stats{},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.UntranslatedPercent(); got != tt.expected {
				t.Errorf("UntranslatedPercent() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSortProjectOverviews(t *testing.T) {
	rows := []ProjectOverview{
		{Project: ProjectSummary{Slug: "b", Name: "Beta"}, TranslatedPercent: 50},
		{Project: ProjectSummary{Slug: "a", Name: "Alpha"}, TranslatedPercent: 90},
		{Project: ProjectSummary{Slug: "c", Name: "Gamma"}, TranslatedPercent: 50},
	}

	SortProjectOverviews(rows)

	if rows[0].Project.Slug != "a" {
		t.Errorf("Expected highest percentage first, got %s", rows[0].Project.Slug)
	}
	// Equal percentages sort by name
	if rows[1].Project.Name != "Beta" || rows[2].Project.Name != "Gamma" {
		t.Errorf("Expected name tie-break Beta before Gamma, got %s, %s",
			rows[1].Project.Name, rows[2].Project.Name)
	}
}

func TestSortComponentOverviews(t *testing.T) {
	rows := []ComponentOverview{
		{Component: ComponentSummary{Slug: "po"}, TranslatedPercent: 10},
		{Component: ComponentSummary{Slug: "glossary"}, TranslatedPercent: 100},
	}

	SortComponentOverviews(rows)

	if rows[0].Component.Slug != "glossary" {
		t.Errorf("Expected glossary first, got %s", rows[0].Component.Slug)
	}
}

func TestMatchesFilter(t *testing.T) {
	project := ProjectSummary{Slug: "fedora-docs", Name: "Fedora Documentation"}

	tests := []struct {
		name     string
		filter   string
		expected bool
	}{
		{"empty filter matches", "", true},
		{"name match case insensitive", "documentation", true},
		{"slug match", "docs", true},
		{"no match", "anaconda", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := project.MatchesFilter(tt.filter); got != tt.expected {
				t.Errorf("MatchesFilter(%q) = %v, want %v", tt.filter, got, tt.expected)
			}
		})
	}
}
