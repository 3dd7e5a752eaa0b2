package applications

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoLastAppliedAtNullMeansNever(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT MAX").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	last, err := repo.LastAppliedAt(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("LastAppliedAt: %v", err)
	}
	if !last.IsZero() {
		t.Fatalf("last = %v, want zero time", last)
	}
}

func TestPGRepoLastAppliedAtReturnsLatest(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT MAX").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(at))

	last, err := repo.LastAppliedAt(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("LastAppliedAt: %v", err)
	}
	if !last.Equal(at) {
		t.Fatalf("last = %v, want %v", last, at)
	}
}

func TestPGRepoListByDateUsesDayBounds(t *testing.T) {
	repo, mock := newMockRepo(t)
	day := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "vacancy_id", "applicant_id", "applied_at"}).
		AddRow("a1", "v1", "app-1", start.Add(9*time.Hour))

	mock.ExpectQuery("FROM applications").
		WithArgs(start, start.Add(24*time.Hour)).
		WillReturnRows(rows)

	out, err := repo.ListByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a1" {
		t.Fatalf("out = %+v, want one row a1", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCountByVacancy(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountByVacancy(context.Background(), "v1")
	if err != nil {
		t.Fatalf("CountByVacancy: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}
