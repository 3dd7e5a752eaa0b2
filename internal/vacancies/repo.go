package vacancies

import (
	"context"
	"time"
)

// Repo abstracts vacancy persistence. Implementations return ErrNotFound
// for missing rows; authorization is the service's concern.
type Repo interface {
	Create(ctx context.Context, vacancy Vacancy) error
	Update(ctx context.Context, vacancy Vacancy) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Vacancy, error)
	GetByTitle(ctx context.Context, title string) (Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
	ListByEmployer(ctx context.Context, employerID string) ([]Vacancy, error)
	// ListArchived returns vacancies whose archival instant precedes now.
	ListArchived(ctx context.Context, now time.Time) ([]Vacancy, error)
	SetActive(ctx context.Context, id string, active bool) error
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
