package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placement-portal/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// EnsureTableColumns fails unless table exists in the public schema with
// every listed column. All missing columns are reported together.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return errors.New("nil db")
	}
	if table == "" || len(columns) == 0 {
		return errors.New("table and columns are required")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := make(map[string]struct{}, len(columns))
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(existing) == 0 {
		return fmt.Errorf("%w: table %s does not exist, run migrate first", ErrSchemaMismatch, table)
	}
	missing := make([]string, 0)
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s is missing %s", ErrSchemaMismatch, table, strings.Join(missing, ", "))
	}
	return nil
}
