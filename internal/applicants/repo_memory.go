package applicants

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	applicants map[string]Applicant
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{applicants: make(map[string]Applicant)}
}

func (r *MemoryRepo) Create(ctx context.Context, applicant Applicant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applicants[applicant.ID] = applicant
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Applicant, error) {
	if err := ctx.Err(); err != nil {
		return Applicant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	applicant, ok := r.applicants[id]
	if !ok {
		return Applicant{}, ErrNotFound
	}
	return applicant, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, username string) (Applicant, error) {
	if err := ctx.Err(); err != nil {
		return Applicant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, applicant := range r.applicants {
		if applicant.Username == username {
			return applicant, nil
		}
	}
	return Applicant{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Applicant, 0, len(r.applicants))
	for _, applicant := range r.applicants {
		out = append(out, applicant)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) ExistsByName(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, applicant := range r.applicants {
		if applicant.Username == username {
			return true, nil
		}
	}
	return false, nil
}
