package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator allowed to import company rows.
type Admin struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
