package applicants

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/cache"
)

// Service serves cached applicant reads. Mutations happen through the
// accounts service, which invalidates the keys written here.
type Service struct {
	Repo  Repo
	Cache *cache.Cache
}

func NewService(repo Repo, c *cache.Cache) *Service {
	return &Service{Repo: repo, Cache: c}
}

func (s *Service) List(ctx context.Context) ([]Applicant, error) {
	out, _, err := cache.Memo(s.Cache, cache.KeyAllApplicants, func() ([]Applicant, error) {
		return s.Repo.List(ctx)
	})
	return out, err
}

func (s *Service) GetByID(ctx context.Context, id string) (Applicant, error) {
	if strings.TrimSpace(id) == "" {
		return Applicant{}, errors.New("applicant id is required")
	}
	out, _, err := cache.Memo(s.Cache, cache.KeyApplicant(id), func() (Applicant, error) {
		return s.Repo.GetByID(ctx, id)
	})
	return out, err
}

func (s *Service) GetByName(ctx context.Context, username string) (Applicant, error) {
	if strings.TrimSpace(username) == "" {
		return Applicant{}, errors.New("applicant name is required")
	}
	out, _, err := cache.Memo(s.Cache, cache.KeyApplicant(username), func() (Applicant, error) {
		return s.Repo.GetByName(ctx, username)
	})
	return out, err
}
