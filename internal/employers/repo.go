package employers

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("employer not found")

type Repo interface {
	Create(ctx context.Context, employer Employer) error
	GetByID(ctx context.Context, id string) (Employer, error)
	GetByName(ctx context.Context, username string) (Employer, error)
	List(ctx context.Context) ([]Employer, error)
	ExistsByName(ctx context.Context, username string) (bool, error)
}
