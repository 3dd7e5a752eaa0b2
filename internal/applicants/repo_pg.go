package applicants

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, applicant Applicant) error {
	const query = `
INSERT INTO applicants (id, username, email, password_hash, experience, skills, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		applicant.ID,
		applicant.Username,
		applicant.Email,
		applicant.PasswordHash,
		applicant.Experience,
		applicant.Skills,
		applicant.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Applicant, error) {
	const query = `
SELECT id, username, email, password_hash, experience, skills, created_at
FROM applicants
WHERE id = $1
LIMIT 1`
	return scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByName(ctx context.Context, username string) (Applicant, error) {
	const query = `
SELECT id, username, email, password_hash, experience, skills, created_at
FROM applicants
WHERE username = $1
LIMIT 1`
	return scanOne(r.DB.QueryRowContext(ctx, query, username))
}

func (r *PGRepo) List(ctx context.Context) ([]Applicant, error) {
	const query = `
SELECT id, username, email, password_hash, experience, skills, created_at
FROM applicants
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Applicant
	for rows.Next() {
		var applicant Applicant
		if err := rows.Scan(
			&applicant.ID,
			&applicant.Username,
			&applicant.Email,
			&applicant.PasswordHash,
			&applicant.Experience,
			&applicant.Skills,
			&applicant.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, applicant)
	}
	return out, rows.Err()
}

func (r *PGRepo) ExistsByName(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM applicants WHERE username = $1)`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&exists)
	return exists, err
}

func scanOne(row *sql.Row) (Applicant, error) {
	var applicant Applicant
	err := row.Scan(
		&applicant.ID,
		&applicant.Username,
		&applicant.Email,
		&applicant.PasswordHash,
		&applicant.Experience,
		&applicant.Skills,
		&applicant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Applicant{}, ErrNotFound
		}
		return Applicant{}, err
	}
	return applicant, nil
}
