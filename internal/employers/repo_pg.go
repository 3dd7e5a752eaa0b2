package employers

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, employer Employer) error {
	const query = `
INSERT INTO employers (id, username, email, password_hash, location, additional_contact_info, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		employer.ID,
		employer.Username,
		employer.Email,
		employer.PasswordHash,
		employer.Location,
		nullableString(employer.AdditionalContactInfo),
		employer.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Employer, error) {
	const query = `
SELECT id, username, email, password_hash, location, additional_contact_info, created_at
FROM employers
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByName(ctx context.Context, username string) (Employer, error) {
	const query = `
SELECT id, username, email, password_hash, location, additional_contact_info, created_at
FROM employers
WHERE username = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, username))
}

func (r *PGRepo) List(ctx context.Context) ([]Employer, error) {
	const query = `
SELECT id, username, email, password_hash, location, additional_contact_info, created_at
FROM employers
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employer
	for rows.Next() {
		var employer Employer
		var contact sql.NullString
		if err := rows.Scan(
			&employer.ID,
			&employer.Username,
			&employer.Email,
			&employer.PasswordHash,
			&employer.Location,
			&contact,
			&employer.CreatedAt,
		); err != nil {
			return nil, err
		}
		if contact.Valid {
			employer.AdditionalContactInfo = contact.String
		}
		out = append(out, employer)
	}
	return out, rows.Err()
}

func (r *PGRepo) ExistsByName(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM employers WHERE username = $1)`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&exists)
	return exists, err
}

func (r *PGRepo) scanOne(row *sql.Row) (Employer, error) {
	var employer Employer
	var contact sql.NullString
	err := row.Scan(
		&employer.ID,
		&employer.Username,
		&employer.Email,
		&employer.PasswordHash,
		&employer.Location,
		&contact,
		&employer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Employer{}, ErrNotFound
		}
		return Employer{}, err
	}
	if contact.Valid {
		employer.AdditionalContactInfo = contact.String
	}
	return employer, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
