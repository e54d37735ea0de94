package stats

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeager/fedora-l10n/internal/model"
)

// LowTranslationThreshold is the percentage below which a project counts as
// needing attention in the notification scan.
const LowTranslationThreshold = 50.0

// Service loads translation statistics through the Weblate client. One
// refresh runs at a time; starting a new one cancels the previous.
type Service struct {
	api API

	jobMutex sync.RWMutex
	job      *model.RefreshJob
	cancel   context.CancelFunc

	onUpdate func(model.RefreshJob) // callback for UI updates
}

// NewService creates a new statistics service
func NewService(api API) *Service {
	return &Service{api: api}
}

// SetUpdateCallback sets the callback function for job progress updates
func (s *Service) SetUpdateCallback(callback func(model.RefreshJob)) {
	s.onUpdate = callback
}

// CurrentJob returns a snapshot of the active or most recent job.
func (s *Service) CurrentJob() (model.RefreshJob, bool) {
	s.jobMutex.RLock()
	defer s.jobMutex.RUnlock()
	if s.job == nil {
		return model.RefreshJob{}, false
	}
	return *s.job, true
}

// Cancel aborts the in-flight refresh, if any.
func (s *Service) Cancel() {
	s.jobMutex.Lock()
	cancel := s.cancel
	s.jobMutex.Unlock()
	if cancel != nil {
		cancel()
	}
}

// LoadOverview fetches all projects and their per-language statistics,
// returning rows sorted by translated percentage descending. Individual
// statistics failures degrade to 0% and do not abort the pass.
func (s *Service) LoadOverview(ctx context.Context, lang string) ([]model.ProjectOverview, error) {
	ctx, job := s.beginJob(ctx, model.RefreshKindOverview)

	projects, err := s.api.ListProjects(ctx, func(page, totalPages int) {
		s.updateJob(job, func(j *model.RefreshJob) {
			j.Page = page
			j.TotalPages = totalPages
		})
	})
	if err != nil {
		s.finishJob(job, err)
		return nil, err
	}

	s.updateJob(job, func(j *model.RefreshJob) {
		j.Total = len(projects)
	})

	rows := make([]model.ProjectOverview, 0, len(projects))
	for i, project := range projects {
		if err := ctx.Err(); err != nil {
			s.finishJob(job, err)
			return nil, err
		}

		pct := 0.0
		st, err := s.api.LanguageStatistics(ctx, project.Slug, lang)
		if err != nil {
			if ctx.Err() != nil {
				s.finishJob(job, ctx.Err())
				return nil, ctx.Err()
			}
			log.Printf("stats: no statistics for %s/%s: %v", project.Slug, lang, err)
		} else {
			pct = st.TranslatedPercent
		}

		rows = append(rows, model.ProjectOverview{
			Project:           project,
			TranslatedPercent: pct,
		})

		s.updateJob(job, func(j *model.RefreshJob) {
			j.Done = i + 1
		})
	}

	model.SortProjectOverviews(rows)
	s.finishJob(job, nil)
	return rows, nil
}

// LoadProject fetches a project's components and their per-language
// statistics, sorted by translated percentage descending.
func (s *Service) LoadProject(ctx context.Context, slug, lang string) ([]model.ComponentOverview, error) {
	ctx, job := s.beginJob(ctx, model.RefreshKindProject)

	components, err := s.api.ListComponents(ctx, slug)
	if err != nil {
		s.finishJob(job, err)
		return nil, err
	}

	s.updateJob(job, func(j *model.RefreshJob) {
		j.Total = len(components)
	})

	rows := make([]model.ComponentOverview, 0, len(components))
	for i, component := range components {
		if err := ctx.Err(); err != nil {
			s.finishJob(job, err)
			return nil, err
		}

		pct := 0.0
		st, err := s.api.ComponentStatistics(ctx, slug, component.Slug, lang)
		if err != nil {
			if ctx.Err() != nil {
				s.finishJob(job, ctx.Err())
				return nil, ctx.Err()
			}
			log.Printf("stats: no statistics for %s/%s/%s: %v", slug, component.Slug, lang, err)
		} else {
			pct = st.TranslatedPercent
		}

		rows = append(rows, model.ComponentOverview{
			Component:         component,
			TranslatedPercent: pct,
		})

		s.updateJob(job, func(j *model.RefreshJob) {
			j.Done = i + 1
		})
	}

	model.SortComponentOverviews(rows)
	s.finishJob(job, nil)
	return rows, nil
}

// LowTranslated returns display names of projects with some but less than
// half of their strings translated. Used for the notification hook.
func LowTranslated(rows []model.ProjectOverview) []string {
	var names []string
	for _, row := range rows {
		if row.TranslatedPercent > 0 && row.TranslatedPercent < LowTranslationThreshold {
			names = append(names, row.Project.DisplayName())
		}
	}
	return names
}

// beginJob cancels any in-flight refresh and registers a new job.
func (s *Service) beginJob(ctx context.Context, kind model.RefreshKind) (context.Context, *model.RefreshJob) {
	ctx, cancel := context.WithCancel(ctx)

	job := &model.RefreshJob{
		ID:        generateJobID(),
		Kind:      kind,
		Status:    model.RefreshStatusLoading,
		StartedAt: time.Now(),
	}

	s.jobMutex.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.job = job
	s.jobMutex.Unlock()

	s.notifyUpdate(job)
	return ctx, job
}

// updateJob mutates the job under lock and notifies the UI.
func (s *Service) updateJob(job *model.RefreshJob, mutate func(*model.RefreshJob)) {
	s.jobMutex.Lock()
	mutate(job)
	s.jobMutex.Unlock()
	s.notifyUpdate(job)
}

// finishJob records the terminal status of a job.
func (s *Service) finishJob(job *model.RefreshJob, err error) {
	s.jobMutex.Lock()
	switch {
	case err == nil:
		job.Status = model.RefreshStatusCompleted
	case errors.Is(err, context.Canceled):
		job.Status = model.RefreshStatusCancelled
	default:
		job.Status = model.RefreshStatusError
		job.LastError = err.Error()
	}
	job.FinishedAt = time.Now()
	var cancel context.CancelFunc
	if s.job == job {
		cancel = s.cancel
		s.cancel = nil
	}
	s.jobMutex.Unlock()

	// Release the job's context resources
	if cancel != nil {
		cancel()
	}

	s.notifyUpdate(job)
}

// notifyUpdate calls the update callback with a job snapshot if set
func (s *Service) notifyUpdate(job *model.RefreshJob) {
	if s.onUpdate == nil {
		return
	}
	s.jobMutex.RLock()
	snapshot := *job
	s.jobMutex.RUnlock()
	s.onUpdate(snapshot)
}

// generateJobID generates a unique job ID using UUID v7 for better uniqueness and time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("job-%d", time.Now().UnixNano())
	}
	return "job-" + id.String()
}
