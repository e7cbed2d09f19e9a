package usecase

import (
	"context"
	"time"
)

// CatalogCache memoizes catalog reads as JSON. Available reports false
// when the backend is bypassed, in which case every call is a no-op.
type CatalogCache interface {
	Available() bool
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
