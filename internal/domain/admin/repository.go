package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("admin not found")

type Repository interface {
	Upsert(ctx context.Context, a Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (Admin, error)
	GetByUsername(ctx context.Context, username string) (Admin, error)
}
