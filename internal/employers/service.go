package employers

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/cache"
)

// Service serves cached employer reads. Mutations happen through the
// accounts service, which invalidates the keys written here.
type Service struct {
	Repo  Repo
	Cache *cache.Cache
}

func NewService(repo Repo, c *cache.Cache) *Service {
	return &Service{Repo: repo, Cache: c}
}

func (s *Service) List(ctx context.Context) ([]Employer, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyAllEmployers, func() ([]Employer, error) {
		return s.Repo.List(ctx)
	})
	return out, err
}

func (s *Service) GetByID(ctx context.Context, id string) (Employer, error) {
	if strings.TrimSpace(id) == "" {
		return Employer{}, errors.New("employer id is required")
	}
	out, _, err := cache.Memo(s.Cache, cache.KeyEmployer(id), func() (Employer, error) {
		return s.Repo.GetByID(ctx, id)
	})
	return out, err
}

func (s *Service) GetByName(ctx context.Context, username string) (Employer, error) {
	if strings.TrimSpace(username) == "" {
		return Employer{}, errors.New("employer name is required")
	}
	out, _, err := cache.Memo(s.Cache, cache.KeyEmployer(username), func() (Employer, error) {
		return s.Repo.GetByName(ctx, username)
	})
	return out, err
}
