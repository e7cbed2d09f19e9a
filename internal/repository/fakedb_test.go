package repository

import (
	"context"
	"fmt"
	"reflect"

	"placement-portal/internal/database"
	"placement-portal/internal/domain/company"
)

type fakeCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	rows     [][]any
	queryErr error
	execErr  error

	queries []fakeCall
	execs   []fakeCall

	committed  bool
	rolledBack bool
}

func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.execs = append(f.execs, fakeCall{sql: q, args: args})
	if f.execErr != nil {
		return 0, f.execErr
	}
	return 1, nil
}

func (f *fakeDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, fakeCall{sql: q, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{data: f.rows, idx: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	f.queries = append(f.queries, fakeCall{sql: q, args: args})
	if f.queryErr != nil {
		return fakeRow{err: f.queryErr}
	}
	if len(f.rows) == 0 {
		return fakeRow{err: database.ErrNoRows}
	}
	return fakeRow{vals: f.rows[0]}
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error                { return nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return &fakeTx{db: f}, nil
}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Exec(ctx context.Context, q string, args ...any) (int64, error) {
	return t.db.Exec(ctx, q, args...)
}

func (t *fakeTx) Query(ctx context.Context, q string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, q, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, q string, args ...any) database.Row {
	return t.db.QueryRow(ctx, q, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.db.rolledBack = true
	return nil
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.idx], dest)
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

func assign(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(vals), len(dest))
	}
	for i, v := range vals {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v))
	}
	return nil
}

// companyValues lays a row out in column order the way the driver would
// return it, with NULL for missing columns.
func companyValues(row company.Row) []any {
	out := make([]any, len(company.Columns))
	for i, c := range company.Columns {
		if v, ok := row[c]; ok {
			s := v
			out[i] = &s
		}
	}
	return out
}
