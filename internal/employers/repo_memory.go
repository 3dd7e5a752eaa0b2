package employers

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	employers map[string]Employer
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{employers: make(map[string]Employer)}
}

func (r *MemoryRepo) Create(ctx context.Context, employer Employer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employers[employer.ID] = employer
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Employer, error) {
	if err := ctx.Err(); err != nil {
		return Employer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	employer, ok := r.employers[id]
	if !ok {
		return Employer{}, ErrNotFound
	}
	return employer, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, username string) (Employer, error) {
	if err := ctx.Err(); err != nil {
		return Employer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, employer := range r.employers {
		if employer.Username == username {
			return employer, nil
		}
	}
	return Employer{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]Employer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Employer, 0, len(r.employers))
	for _, employer := range r.employers {
		out = append(out, employer)
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
	for _, employer := range r.employers {
		if employer.Username == username {
			return true, nil
		}
	}
	return false, nil
}
