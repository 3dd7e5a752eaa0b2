package vacancies

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	vacancies map[string]Vacancy
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{vacancies: make(map[string]Vacancy)}
}

func (r *MemoryRepo) Create(ctx context.Context, vacancy Vacancy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vacancies[vacancy.ID] = vacancy
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, vacancy Vacancy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vacancies[vacancy.ID]; !ok {
		return ErrNotFound
	}
	r.vacancies[vacancy.ID] = vacancy
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vacancies[id]; !ok {
		return ErrNotFound
	}
	delete(r.vacancies, id)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return Vacancy{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	vacancy, ok := r.vacancies[id]
	if !ok {
		return Vacancy{}, ErrNotFound
	}
	return vacancy, nil
}

func (r *MemoryRepo) GetByTitle(ctx context.Context, title string) (Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return Vacancy{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, vacancy := range r.vacancies {
		if vacancy.Title == title {
			return vacancy, nil
		}
	}
	return Vacancy{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Vacancy, 0, len(r.vacancies))
	for _, vacancy := range r.vacancies {
		out = append(out, vacancy)
	}
	sortByCreated(out)
	return out, nil
}

func (r *MemoryRepo) ListByEmployer(ctx context.Context, employerID string) ([]Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Vacancy
	for _, vacancy := range r.vacancies {
		if vacancy.EmployerID == employerID {
			out = append(out, vacancy)
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *MemoryRepo) ListArchived(ctx context.Context, now time.Time) ([]Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Vacancy
	for _, vacancy := range r.vacancies {
		if vacancy.Archived(now) {
			out = append(out, vacancy)
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *MemoryRepo) SetActive(ctx context.Context, id string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	vacancy, ok := r.vacancies[id]
	if !ok {
		return ErrNotFound
	}
	vacancy.IsActive = active
	r.vacancies[id] = vacancy
	return nil
}

func (r *MemoryRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, vacancy := range r.vacancies {
		if vacancy.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func sortByCreated(vs []Vacancy) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].CreatedAt.Before(vs[j].CreatedAt) })
}
