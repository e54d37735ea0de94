package stats

import (
	"context"

	"github.com/yeager/fedora-l10n/internal/model"
	"github.com/yeager/fedora-l10n/internal/weblate"
)

// API is the subset of the Weblate client the service depends on.
type API interface {
	ListProjects(ctx context.Context, progress weblate.ProgressFunc) ([]model.ProjectSummary, error)
	ListComponents(ctx context.Context, slug string) ([]model.ComponentSummary, error)
	LanguageStatistics(ctx context.Context, slug, lang string) (model.Stats, error)
	ComponentStatistics(ctx context.Context, project, component, lang string) (model.Stats, error)
}

// Loader defines the interface for the statistics service.
type Loader interface {
	SetUpdateCallback(func(model.RefreshJob))
	LoadOverview(ctx context.Context, lang string) ([]model.ProjectOverview, error)
	LoadProject(ctx context.Context, slug, lang string) ([]model.ComponentOverview, error)
	CurrentJob() (model.RefreshJob, bool)
	Cancel()
}
