package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placement-portal/internal/database"

	"go.uber.org/zap"
)

// Seeder writes one kind of reference data. Seeders must be safe to run
// repeatedly.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner applies seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run returns how many seeders completed.
func (r Runner) Run(ctx context.Context, db database.DB) (int, error) {
	if db == nil {
		return 0, errors.New("nil db")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	done := 0
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return done, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		done++
		logger.Info("seeder finished", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return done, nil
}
