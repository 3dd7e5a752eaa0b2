package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/authz"
	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/telemetry"
	"jobboard-backend/internal/vacancies"
)

// VacancyDirectory supplies uncached vacancy snapshots. Admission decisions
// must run against current persisted state, never a memoized row.
type VacancyDirectory interface {
	Snapshot(ctx context.Context, title string) (vacancies.Vacancy, error)
	SnapshotByID(ctx context.Context, id string) (vacancies.Vacancy, error)
}

// ApplicantDirectory resolves applicant records for guards and name lookups.
type ApplicantDirectory interface {
	GetByID(ctx context.Context, id string) (applicants.Applicant, error)
	GetByName(ctx context.Context, username string) (applicants.Applicant, error)
}

// Service implements application admission and history reads.
type Service struct {
	Repo       Repo
	Cache      *cache.Cache
	Vacancies  VacancyDirectory
	Applicants ApplicantDirectory
	locks      *keyedMutex
	now        func() time.Time
}

func NewService(repo Repo, c *cache.Cache, vacancyDir VacancyDirectory, applicantDir ApplicantDirectory) *Service {
	return &Service{
		Repo:       repo,
		Cache:      c,
		Vacancies:  vacancyDir,
		Applicants: applicantDir,
		locks:      newKeyedMutex(),
		now:        time.Now,
	}
}

// Apply runs the admission sequence for one applicant against one vacancy.
// The checks run in a fixed order inside a critical section keyed on the
// applicant and the vacancy, so two racing submissions cannot both observe
// a free slot or a clear cooldown. The applicant lock is always taken
// before the vacancy lock.
func (s *Service) Apply(ctx context.Context, p authz.Principal, vacancyTitle string) (Application, error) {
	if authz.RequireRole(p, authz.RoleApplicant) != authz.Allow {
		return Application{}, ErrUnauthorized
	}
	vacancyTitle = strings.TrimSpace(vacancyTitle)
	if vacancyTitle == "" {
		return Application{}, ErrVacancyNotFound
	}

	s.locks.lock("applicant:" + p.ID)
	defer s.locks.unlock("applicant:" + p.ID)
	s.locks.lock("vacancy:" + vacancyTitle)
	defer s.locks.unlock("vacancy:" + vacancyTitle)

	now := s.now()

	// Cooldown is global across the whole board, not per vacancy. An
	// application at exactly the window boundary is admitted.
	last, err := s.Repo.LastAppliedAt(ctx, p.ID)
	if err != nil {
		return Application{}, fmt.Errorf("load last application: %w", err)
	}
	if !last.IsZero() {
		if next := last.Add(cooldownWindow); now.Before(next) {
			metrics.IncApplicationRejected("cooldown")
			return Application{}, &CooldownError{Remaining: next.Sub(now)}
		}
	}

	vacancy, err := s.Vacancies.Snapshot(ctx, vacancyTitle)
	if err != nil {
		if errors.Is(err, vacancies.ErrNotFound) {
			metrics.IncApplicationRejected("not_found")
			return Application{}, ErrVacancyNotFound
		}
		return Application{}, fmt.Errorf("load vacancy: %w", err)
	}

	count, err := s.Repo.CountByVacancy(ctx, vacancy.ID)
	if err != nil {
		return Application{}, fmt.Errorf("count applications: %w", err)
	}
	if count >= vacancy.MaxApplications {
		metrics.IncApplicationRejected("capacity")
		return Application{}, ErrCapacityReached
	}

	// Admission tolerates the short grace between expiry and archival, so
	// the cutoff is the archival instant rather than the expiry itself.
	if vacancy.Archived(now) {
		metrics.IncApplicationRejected("expired")
		return Application{}, ErrVacancyExpired
	}
	if !vacancy.IsActive {
		metrics.IncApplicationRejected("inactive")
		return Application{}, ErrVacancyInactive
	}

	app := Application{
		ID:          uuid.NewString(),
		VacancyID:   vacancy.ID,
		ApplicantID: p.ID,
		AppliedAt:   now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.Cache.Invalidate(
		cache.KeyAllApplications,
		cache.KeyApplicationsByApplicant(p.Name),
		cache.KeyApplicationsByDate(now),
	)
	metrics.IncApplicationAdmitted()
	telemetry.Info("application.admitted", map[string]any{
		"application_id": app.ID,
		"vacancy_id":     vacancy.ID,
		"applicant_id":   p.ID,
	})
	return app, nil
}

// List returns every application on the board.
func (s *Service) List(ctx context.Context) ([]Application, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyAllApplications, func() ([]Application, error) {
		return s.Repo.List(ctx)
	})
	return out, err
}

// GetByID returns one application.
func (s *Service) GetByID(ctx context.Context, id string) (Application, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyApplication(id), func() (Application, error) {
		return s.Repo.GetByID(ctx, id)
	})
	return out, err
}

// ByDate returns applications submitted on the given UTC calendar day.
func (s *Service) ByDate(ctx context.Context, day time.Time) ([]Application, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyApplicationsByDate(day), func() ([]Application, error) {
		return s.Repo.ListByDate(ctx, day)
	})
	return out, err
}

// HistoryByApplicant returns an applicant's submissions. Only the applicant
// themselves may read it; the guard runs on every request regardless of
// whether the payload came from the cache.
func (s *Service) HistoryByApplicant(ctx context.Context, p authz.Principal, name string) ([]Application, error) {
	applicant, err := s.Applicants.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, applicants.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load applicant: %w", err)
	}
	switch authz.SelfApplicant(p, true, applicant.Username) {
	case authz.Allow:
	case authz.DenyUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, ErrNotFound
	}
	out, _, err := cache.Memo(s.Cache, cache.KeyApplicationsByApplicant(name), func() ([]Application, error) {
		return s.Repo.ListByApplicant(ctx, applicant.ID)
	})
	return out, err
}

// ApplicantsOfVacancy returns the usernames of everyone admitted to an
// owned vacancy.
func (s *Service) ApplicantsOfVacancy(ctx context.Context, p authz.Principal, vacancyID string) ([]string, error) {
	vacancy, err := s.Vacancies.SnapshotByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, vacancies.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load vacancy: %w", err)
	}
	switch authz.OwnedByEmployer(p, true, vacancy.EmployerID) {
	case authz.Allow:
	case authz.DenyUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, ErrNotFound
	}

	apps, err := s.Repo.ListByVacancy(ctx, vacancy.ID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(apps))
	for _, app := range apps {
		applicant, err := s.Applicants.GetByID(ctx, app.ApplicantID)
		if err != nil {
			// Foreign keys make this unreachable outside of a mid-request
			// cascade; skip rather than fail the whole listing.
			telemetry.Warn("application.applicant_missing", map[string]any{
				"application_id": app.ID,
				"applicant_id":   app.ApplicantID,
			})
			continue
		}
		names = append(names, applicant.Username)
	}
	return names, nil
}

// DeleteByVacancy satisfies the vacancy service's cascade hook.
func (s *Service) DeleteByVacancy(ctx context.Context, vacancyID string) error {
	return s.Repo.DeleteByVacancy(ctx, vacancyID)
}
