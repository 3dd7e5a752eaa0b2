package applicants

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("applicant not found")

type Repo interface {
	Create(ctx context.Context, applicant Applicant) error
	GetByID(ctx context.Context, id string) (Applicant, error)
	GetByName(ctx context.Context, username string) (Applicant, error)
	List(ctx context.Context) ([]Applicant, error)
	ExistsByName(ctx context.Context, username string) (bool, error)
}
