package vacancies

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/authz"
	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/shared/telemetry"
)

// ApplicationCascade removes the applications attached to a vacancy when
// the vacancy itself is deleted. The applications repository satisfies it.
type ApplicationCascade interface {
	DeleteByVacancy(ctx context.Context, vacancyID string) error
}

// Service implements the vacancy lifecycle. Reads go through the cache and
// resolve the effective state against the request clock, so a cached row
// never reports "open" past its expiry instant.
type Service struct {
	Repo         Repo
	Cache        *cache.Cache
	Applications ApplicationCascade
	now          func() time.Time
}

func NewService(repo Repo, c *cache.Cache, cascade ApplicationCascade) *Service {
	return &Service{Repo: repo, Cache: c, Applications: cascade, now: time.Now}
}

// CreateInput carries the employer-supplied fields of a new vacancy.
type CreateInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaxApplications int       `json:"maxApplications"`
	ExpireAt        time.Time `json:"expireAt"`
	Active          *bool     `json:"active"`
}

// UpdateInput carries a full replacement of the mutable vacancy fields.
type UpdateInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaxApplications int       `json:"maxApplications"`
	ExpireAt        time.Time `json:"expireAt"`
	Active          *bool     `json:"active"`
}

func validateFields(title string, maxApplications int, expireAt time.Time) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if maxApplications <= 0 {
		return fmt.Errorf("%w: maxApplications must be positive", ErrInvalidInput)
	}
	if expireAt.IsZero() {
		return fmt.Errorf("%w: expireAt is required", ErrInvalidInput)
	}
	return nil
}

// Create posts a new vacancy owned by the calling employer. Titles are
// unique across the whole board; the database constraint backs the check
// under concurrent creates.
func (s *Service) Create(ctx context.Context, p authz.Principal, in CreateInput) (View, error) {
	if authz.RequireRole(p, authz.RoleEmployer) != authz.Allow {
		return View{}, ErrUnauthorized
	}
	if err := validateFields(in.Title, in.MaxApplications, in.ExpireAt); err != nil {
		return View{}, err
	}
	taken, err := s.Repo.ExistsByTitle(ctx, in.Title)
	if err != nil {
		return View{}, fmt.Errorf("check title: %w", err)
	}
	if taken {
		return View{}, ErrTitleTaken
	}

	now := s.now()
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	vacancy := Vacancy{
		ID:              uuid.NewString(),
		EmployerID:      p.ID,
		Title:           in.Title,
		Description:     in.Description,
		MaxApplications: in.MaxApplications,
		ExpireAt:        in.ExpireAt,
		ArchivedAt:      archivedAtFor(in.ExpireAt),
		IsActive:        active,
		CreatedAt:       now,
	}
	if err := s.Repo.Create(ctx, vacancy); err != nil {
		return View{}, fmt.Errorf("create vacancy: %w", err)
	}
	s.Cache.Invalidate(
		cache.KeyAllVacancies,
		cache.KeyVacancy(vacancy.ID),
		cache.KeyVacancy(vacancy.Title),
		cache.KeyArchivedVacancies(p.ID),
	)
	return s.view(vacancy, now), nil
}

// Update replaces the mutable fields of an owned vacancy. The archival
// instant is rederived from the new expiry.
func (s *Service) Update(ctx context.Context, p authz.Principal, id string, in UpdateInput) (View, error) {
	existing, err := s.owned(ctx, p, id)
	if err != nil {
		return View{}, err
	}
	if err := validateFields(in.Title, in.MaxApplications, in.ExpireAt); err != nil {
		return View{}, err
	}
	oldTitle := existing.Title
	if in.Title != oldTitle {
		taken, err := s.Repo.ExistsByTitle(ctx, in.Title)
		if err != nil {
			return View{}, fmt.Errorf("check title: %w", err)
		}
		if taken {
			return View{}, ErrTitleTaken
		}
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.MaxApplications = in.MaxApplications
	existing.ExpireAt = in.ExpireAt
	existing.ArchivedAt = archivedAtFor(in.ExpireAt)
	if in.Active != nil {
		existing.IsActive = *in.Active
	}
	if err := s.Repo.Update(ctx, existing); err != nil {
		return View{}, fmt.Errorf("update vacancy: %w", err)
	}
	s.Cache.Invalidate(
		cache.KeyAllVacancies,
		cache.KeyVacancy(existing.ID),
		cache.KeyVacancy(oldTitle),
		cache.KeyVacancy(existing.Title),
		cache.KeyArchivedVacancies(existing.EmployerID),
	)
	return s.view(existing, s.now()), nil
}

// Delete removes an owned vacancy and every application attached to it.
func (s *Service) Delete(ctx context.Context, p authz.Principal, id string) error {
	existing, err := s.owned(ctx, p, id)
	if err != nil {
		return err
	}
	if s.Applications != nil {
		if err := s.Applications.DeleteByVacancy(ctx, existing.ID); err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
	}
	if err := s.Repo.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("delete vacancy: %w", err)
	}
	s.Cache.Invalidate(
		cache.KeyAllVacancies,
		cache.KeyAllApplications,
		cache.KeyVacancy(existing.ID),
		cache.KeyVacancy(existing.Title),
		cache.KeyArchivedVacancies(existing.EmployerID),
	)
	// The deleted applications cannot be enumerated after the cascade, so
	// every application-derived key goes.
	s.Cache.InvalidatePrefix("application")
	return nil
}

// Activate resumes admissions for an owned vacancy.
func (s *Service) Activate(ctx context.Context, p authz.Principal, id string) (View, error) {
	return s.setActive(ctx, p, id, true)
}

// Deactivate suspends admissions for an owned vacancy without archiving it.
func (s *Service) Deactivate(ctx context.Context, p authz.Principal, id string) (View, error) {
	return s.setActive(ctx, p, id, false)
}

func (s *Service) setActive(ctx context.Context, p authz.Principal, id string, active bool) (View, error) {
	existing, err := s.owned(ctx, p, id)
	if err != nil {
		return View{}, err
	}
	if existing.IsActive == active {
		if active {
			return View{}, ErrAlreadyActive
		}
		return View{}, ErrAlreadyInactive
	}
	if err := s.Repo.SetActive(ctx, existing.ID, active); err != nil {
		return View{}, fmt.Errorf("set active: %w", err)
	}
	existing.IsActive = active
	s.Cache.Invalidate(
		cache.KeyAllVacancies,
		cache.KeyVacancy(existing.ID),
		cache.KeyVacancy(existing.Title),
		cache.KeyArchivedVacancies(existing.EmployerID),
	)
	return s.view(existing, s.now()), nil
}

// List returns every vacancy on the board with its resolved state.
func (s *Service) List(ctx context.Context) ([]View, error) {
	rows, _, err := cache.Memo(s.Cache, cache.KeyAllVacancies, func() ([]Vacancy, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return s.views(ctx, rows), nil
}

// Mine returns the calling employer's vacancies. The result is scoped to
// the principal, so it bypasses the shared cache.
func (s *Service) Mine(ctx context.Context, p authz.Principal) ([]View, error) {
	if authz.RequireRole(p, authz.RoleEmployer) != authz.Allow {
		return nil, ErrUnauthorized
	}
	rows, err := s.Repo.ListByEmployer(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, rows), nil
}

// Archived returns the calling employer's vacancies that have crossed
// their archival instant. Cached per employer.
func (s *Service) Archived(ctx context.Context, p authz.Principal) ([]View, error) {
	if authz.RequireRole(p, authz.RoleEmployer) != authz.Allow {
		return nil, ErrUnauthorized
	}
	rows, _, err := cache.Memo(s.Cache, cache.KeyArchivedVacancies(p.ID), func() ([]Vacancy, error) {
		all, err := s.Repo.ListArchived(ctx, s.now())
		if err != nil {
			return nil, err
		}
		var mine []Vacancy
		for _, v := range all {
			if v.EmployerID == p.ID {
				mine = append(mine, v)
			}
		}
		return mine, nil
	})
	if err != nil {
		return nil, err
	}
	return s.views(ctx, rows), nil
}

// GetByID returns one owned vacancy. The caller must be its employer;
// a missing vacancy and a foreign one fail differently so owners get a
// useful signal while strangers learn only that access was denied.
func (s *Service) GetByID(ctx context.Context, p authz.Principal, id string) (View, error) {
	vacancy, err := s.cachedByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	switch authz.OwnedByEmployer(p, true, vacancy.EmployerID) {
	case authz.Allow:
	case authz.DenyUnauthorized:
		return View{}, ErrUnauthorized
	default:
		return View{}, ErrNotFound
	}
	return s.resolveView(ctx, vacancy), nil
}

// GetByTitle is GetByID keyed by the unique title.
func (s *Service) GetByTitle(ctx context.Context, p authz.Principal, title string) (View, error) {
	vacancy, err := s.cachedByTitle(ctx, title)
	if err != nil {
		return View{}, err
	}
	switch authz.OwnedByEmployer(p, true, vacancy.EmployerID) {
	case authz.Allow:
	case authz.DenyUnauthorized:
		return View{}, ErrUnauthorized
	default:
		return View{}, ErrNotFound
	}
	return s.resolveView(ctx, vacancy), nil
}

// SearchByTitle is the public lookup applicants use before applying.
func (s *Service) SearchByTitle(ctx context.Context, title string) (View, error) {
	if strings.TrimSpace(title) == "" {
		return View{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	vacancy, err := s.cachedByTitle(ctx, title)
	if err != nil {
		return View{}, err
	}
	return s.resolveView(ctx, vacancy), nil
}

// Snapshot returns the raw vacancy row by title for the admission path,
// uncached so the decision always runs against current persisted state.
func (s *Service) Snapshot(ctx context.Context, title string) (Vacancy, error) {
	return s.Repo.GetByTitle(ctx, title)
}

// SnapshotByID is Snapshot keyed by id.
func (s *Service) SnapshotByID(ctx context.Context, id string) (Vacancy, error) {
	return s.Repo.GetByID(ctx, id)
}

// owned loads a vacancy straight from the store and verifies ownership.
// Mutations go through here rather than the cache so they never act on a
// stale snapshot.
func (s *Service) owned(ctx context.Context, p authz.Principal, id string) (Vacancy, error) {
	vacancy, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Vacancy{}, ErrNotFound
		}
		return Vacancy{}, fmt.Errorf("load vacancy: %w", err)
	}
	switch authz.OwnedByEmployer(p, true, vacancy.EmployerID) {
	case authz.Allow:
		return vacancy, nil
	case authz.DenyUnauthorized:
		return Vacancy{}, ErrUnauthorized
	default:
		return Vacancy{}, ErrNotFound
	}
}

func (s *Service) cachedByID(ctx context.Context, id string) (Vacancy, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyVacancy(id), func() (Vacancy, error) {
		return s.Repo.GetByID(ctx, id)
	})
	return out, err
}

func (s *Service) cachedByTitle(ctx context.Context, title string) (Vacancy, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyVacancy(title), func() (Vacancy, error) {
		return s.Repo.GetByTitle(ctx, title)
	})
	return out, err
}

func (s *Service) view(v Vacancy, now time.Time) View {
	return View{Vacancy: v, Status: v.StateAt(now)}
}

func (s *Service) views(ctx context.Context, rows []Vacancy) []View {
	now := s.now()
	out := make([]View, 0, len(rows))
	for _, v := range rows {
		out = append(out, s.view(v, now))
		s.reconcileActiveFlag(ctx, v, now)
	}
	return out
}

func (s *Service) resolveView(ctx context.Context, v Vacancy) View {
	now := s.now()
	s.reconcileActiveFlag(ctx, v, now)
	return s.view(v, now)
}

// reconcileActiveFlag clears the stored active flag once a still-active
// vacancy is read past its expiry. Best effort: the resolved state already
// reflects expiry, so a failed write costs nothing but a retry on the
// next read.
func (s *Service) reconcileActiveFlag(ctx context.Context, v Vacancy, now time.Time) {
	if !v.IsActive || !now.After(v.ExpireAt) {
		return
	}
	if err := s.Repo.SetActive(ctx, v.ID, false); err != nil {
		telemetry.Warn("vacancy.reconcile_active_failed", map[string]any{
			"vacancy_id": v.ID,
			"error":      err.Error(),
		})
		return
	}
	s.Cache.Invalidate(
		cache.KeyAllVacancies,
		cache.KeyVacancy(v.ID),
		cache.KeyVacancy(v.Title),
	)
}
