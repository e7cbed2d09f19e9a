package repository

import (
	"context"
	"errors"

	"placement-portal/internal/database"
	"placement-portal/internal/domain/admin"

	"github.com/google/uuid"
)

type PostgresAdminRepository struct {
	db database.DB
}

func NewPostgresAdminRepository(db database.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

// Upsert creates the admin or resets the password of an existing username.
func (r *PostgresAdminRepository) Upsert(ctx context.Context, a admin.Admin) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admins (id, username, password_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO UPDATE
		 SET password_hash = EXCLUDED.password_hash, updated_at = now()`,
		a.ID, a.Username, a.PasswordHash,
	)
	return err
}

func (r *PostgresAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (admin.Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at, updated_at FROM admins WHERE id = $1`,
		id,
	)
	return scanAdmin(row)
}

func (r *PostgresAdminRepository) GetByUsername(ctx context.Context, username string) (admin.Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at, updated_at FROM admins WHERE username = $1`,
		username,
	)
	return scanAdmin(row)
}

func scanAdmin(row scanner) (admin.Admin, error) {
	var a admin.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, err
	}
	return a, nil
}
