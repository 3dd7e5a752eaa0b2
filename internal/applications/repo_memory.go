package applications

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	apps map[string]Application
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{apps: make(map[string]Application)}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Application, error) {
	return r.filter(ctx, func(Application) bool { return true })
}

func (r *MemoryRepo) ListByApplicant(ctx context.Context, applicantID string) ([]Application, error) {
	return r.filter(ctx, func(a Application) bool { return a.ApplicantID == applicantID })
}

func (r *MemoryRepo) ListByVacancy(ctx context.Context, vacancyID string) ([]Application, error) {
	return r.filter(ctx, func(a Application) bool { return a.VacancyID == vacancyID })
}

func (r *MemoryRepo) ListByDate(ctx context.Context, day time.Time) ([]Application, error) {
	dayUTC := day.UTC().Truncate(24 * time.Hour)
	return r.filter(ctx, func(a Application) bool {
		return a.AppliedAt.UTC().Truncate(24 * time.Hour).Equal(dayUTC)
	})
}

func (r *MemoryRepo) CountByVacancy(ctx context.Context, vacancyID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, app := range r.apps {
		if app.VacancyID == vacancyID {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepo) LastAppliedAt(ctx context.Context, applicantID string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var last time.Time
	for _, app := range r.apps {
		if app.ApplicantID == applicantID && app.AppliedAt.After(last) {
			last = app.AppliedAt
		}
	}
	return last, nil
}

func (r *MemoryRepo) DeleteByVacancy(ctx context.Context, vacancyID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, app := range r.apps {
		if app.VacancyID == vacancyID {
			delete(r.apps, id)
		}
	}
	return nil
}

func (r *MemoryRepo) filter(ctx context.Context, keep func(Application) bool) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Application
	for _, app := range r.apps {
		if keep(app) {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}
