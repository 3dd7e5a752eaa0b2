package applications

import (
	"context"
	"time"
)

// Repo abstracts application persistence.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	ListByVacancy(ctx context.Context, vacancyID string) ([]Application, error)
	// ListByDate returns applications submitted on the given UTC calendar day.
	ListByDate(ctx context.Context, day time.Time) ([]Application, error)
	CountByVacancy(ctx context.Context, vacancyID string) (int, error)
	// LastAppliedAt returns the applicant's most recent submission instant
	// across all vacancies, or the zero time if they never applied.
	LastAppliedAt(ctx context.Context, applicantID string) (time.Time, error)
	DeleteByVacancy(ctx context.Context, vacancyID string) error
}
