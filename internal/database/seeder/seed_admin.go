package seeder

import (
	"context"
	"strings"

	"placement-portal/internal/database"
	"placement-portal/internal/repository"
	ucauth "placement-portal/internal/usecase/auth"
)

// AdminSeeder creates or re-keys the configured admin. It does nothing when
// no username is configured.
type AdminSeeder struct {
	Username string
	Password string
}

func (AdminSeeder) Name() string { return "admin" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	if strings.TrimSpace(s.Username) == "" {
		return nil
	}
	if err := EnsureTableColumns(ctx, db, "admins", "id", "username", "password_hash", "created_at", "updated_at"); err != nil {
		return err
	}

	svc := ucauth.NewService(repository.NewPostgresAdminRepository(db))
	_, err := svc.EnsureAdmin(ctx, s.Username, s.Password)
	return err
}
