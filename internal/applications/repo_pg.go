package applications

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `id, vacancy_id, applicant_id, applied_at`

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, vacancy_id, applicant_id, applied_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, app.ID, app.VacancyID, app.ApplicantID, app.AppliedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 LIMIT 1`
	var app Application
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.VacancyID, &app.ApplicantID, &app.AppliedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications ORDER BY applied_at`
	return r.queryMany(ctx, query)
}

func (r *PGRepo) ListByApplicant(ctx context.Context, applicantID string) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1 ORDER BY applied_at`
	return r.queryMany(ctx, query, applicantID)
}

func (r *PGRepo) ListByVacancy(ctx context.Context, vacancyID string) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE vacancy_id = $1 ORDER BY applied_at`
	return r.queryMany(ctx, query, vacancyID)
}

func (r *PGRepo) ListByDate(ctx context.Context, day time.Time) ([]Application, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	const query = `
SELECT ` + applicationColumns + `
FROM applications
WHERE applied_at >= $1 AND applied_at < $2
ORDER BY applied_at`
	return r.queryMany(ctx, query, start, start.Add(24*time.Hour))
}

func (r *PGRepo) CountByVacancy(ctx context.Context, vacancyID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE vacancy_id = $1`, vacancyID).Scan(&n)
	return n, err
}

func (r *PGRepo) LastAppliedAt(ctx context.Context, applicantID string) (time.Time, error) {
	const query = `SELECT MAX(applied_at) FROM applications WHERE applicant_id = $1`
	var last sql.NullTime
	if err := r.DB.QueryRowContext(ctx, query, applicantID).Scan(&last); err != nil {
		return time.Time{}, err
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}

func (r *PGRepo) DeleteByVacancy(ctx context.Context, vacancyID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM applications WHERE vacancy_id = $1`, vacancyID)
	return err
}

func (r *PGRepo) queryMany(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.VacancyID, &app.ApplicantID, &app.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}
