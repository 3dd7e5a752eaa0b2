package vacancies

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

const vacancyColumns = `id, employer_id, title, description, max_applications, expire_at, archived_at, is_active, created_at`

func (r *PGRepo) Create(ctx context.Context, vacancy Vacancy) error {
	const query = `
INSERT INTO vacancies (id, employer_id, title, description, max_applications, expire_at, archived_at, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		vacancy.ID,
		vacancy.EmployerID,
		vacancy.Title,
		vacancy.Description,
		vacancy.MaxApplications,
		vacancy.ExpireAt,
		vacancy.ArchivedAt,
		vacancy.IsActive,
		vacancy.CreatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, vacancy Vacancy) error {
	const query = `
UPDATE vacancies
SET title = $2, description = $3, max_applications = $4, expire_at = $5, archived_at = $6, is_active = $7
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		vacancy.ID,
		vacancy.Title,
		vacancy.Description,
		vacancy.MaxApplications,
		vacancy.ExpireAt,
		vacancy.ArchivedAt,
		vacancy.IsActive,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Vacancy, error) {
	const query = `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1 LIMIT 1`
	return scanVacancy(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByTitle(ctx context.Context, title string) (Vacancy, error) {
	const query = `SELECT ` + vacancyColumns + ` FROM vacancies WHERE title = $1 LIMIT 1`
	return scanVacancy(r.DB.QueryRowContext(ctx, query, title))
}

func (r *PGRepo) List(ctx context.Context) ([]Vacancy, error) {
	const query = `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at`
	return r.queryMany(ctx, query)
}

func (r *PGRepo) ListByEmployer(ctx context.Context, employerID string) ([]Vacancy, error) {
	const query = `SELECT ` + vacancyColumns + ` FROM vacancies WHERE employer_id = $1 ORDER BY created_at`
	return r.queryMany(ctx, query, employerID)
}

func (r *PGRepo) ListArchived(ctx context.Context, now time.Time) ([]Vacancy, error) {
	const query = `SELECT ` + vacancyColumns + ` FROM vacancies WHERE archived_at < $1 ORDER BY created_at`
	return r.queryMany(ctx, query, now)
}

func (r *PGRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE vacancies SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM vacancies WHERE title = $1)`, title).Scan(&exists)
	return exists, err
}

func (r *PGRepo) queryMany(ctx context.Context, query string, args ...any) ([]Vacancy, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vacancy
	for rows.Next() {
		var vacancy Vacancy
		if err := rows.Scan(
			&vacancy.ID,
			&vacancy.EmployerID,
			&vacancy.Title,
			&vacancy.Description,
			&vacancy.MaxApplications,
			&vacancy.ExpireAt,
			&vacancy.ArchivedAt,
			&vacancy.IsActive,
			&vacancy.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, vacancy)
	}
	return out, rows.Err()
}

func scanVacancy(row *sql.Row) (Vacancy, error) {
	var vacancy Vacancy
	err := row.Scan(
		&vacancy.ID,
		&vacancy.EmployerID,
		&vacancy.Title,
		&vacancy.Description,
		&vacancy.MaxApplications,
		&vacancy.ExpireAt,
		&vacancy.ArchivedAt,
		&vacancy.IsActive,
		&vacancy.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vacancy{}, ErrNotFound
		}
		return Vacancy{}, err
	}
	return vacancy, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
