package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"placement-portal/internal/database"
	"placement-portal/internal/domain/company"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound      = errors.New("company not found")
	ErrInvalidColumn = errors.New("invalid column")
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type ListOptions struct {
	Limit     int
	Offset    int
	OrderBy   string
	Ascending bool
}

type Filter struct {
	Category            string
	ProfitabilityStatus string
	EmployeeSize        string
	RemoteWorkPolicy    string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

type CompanyRepository interface {
	ListCompanies(ctx context.Context, opts ListOptions) ([]company.Row, error)
	GetCompanyByID(ctx context.Context, id string) (company.Row, error)
	ListCompaniesByIDs(ctx context.Context, ids []string) ([]company.Row, error)
	ListCompaniesByCategory(ctx context.Context, category string) ([]company.Row, error)
	SearchCompanies(ctx context.Context, q string) ([]company.Row, error)
	FilterCompanies(ctx context.Context, f Filter) ([]company.Row, error)
	ListCompaniesWithTechStack(ctx context.Context) ([]company.Row, error)
	ListStatsFacets(ctx context.Context) ([]company.StatsFacet, error)
	ListCategories(ctx context.Context) ([]string, error)
	UpsertCompanies(ctx context.Context, rows []company.Row) (int, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

var (
	selectColumns = quoteColumns(company.Columns)
	selectCompany = `SELECT ` + selectColumns + ` FROM company`
	upsertCompany = buildUpsert()
)

func quoteColumns(cols []string) string {
	quoted := make([]string, 0, len(cols))
	for _, c := range cols {
		quoted = append(quoted, pgx.Identifier{c}.Sanitize())
	}
	return strings.Join(quoted, ", ")
}

func buildUpsert() string {
	placeholders := make([]string, 0, len(company.Columns))
	updates := make([]string, 0, len(company.Columns))
	for i, c := range company.Columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		if c == company.ColCompanyID {
			continue
		}
		q := pgx.Identifier{c}.Sanitize()
		updates = append(updates, q+" = EXCLUDED."+q)
	}
	updates = append(updates, "updated_at = now()")
	return `INSERT INTO company (` + selectColumns + `) VALUES (` + strings.Join(placeholders, ", ") +
		`) ON CONFLICT (company_id) DO UPDATE SET ` + strings.Join(updates, ", ")
}

func (r *PostgresCompanyRepository) ListCompanies(ctx context.Context, opts ListOptions) ([]company.Row, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	order := pgx.Identifier{company.ColCompanyID}.Sanitize()
	if opts.OrderBy != "" {
		if !company.IsColumn(opts.OrderBy) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidColumn, opts.OrderBy)
		}
		dir := "DESC"
		if opts.Ascending {
			dir = "ASC"
		}
		order = pgx.Identifier{opts.OrderBy}.Sanitize() + " " + dir + ", " + order
	}

	q := selectCompany + ` ORDER BY ` + order + ` LIMIT $1 OFFSET $2`
	return r.queryRows(ctx, q, limit, offset)
}

func (r *PostgresCompanyRepository) GetCompanyByID(ctx context.Context, id string) (company.Row, error) {
	row := r.db.QueryRow(ctx, selectCompany+` WHERE company_id = $1`, id)
	out, err := scanCompanyRow(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) ListCompaniesByIDs(ctx context.Context, ids []string) ([]company.Row, error) {
	if len(ids) == 0 {
		return make([]company.Row, 0), nil
	}
	rows, err := r.queryRows(ctx, selectCompany+` WHERE company_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]company.Row, len(rows))
	for _, row := range rows {
		byID[row.ID()] = row
	}
	out := make([]company.Row, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// categoryKeySQL is company.CategoryKey of the stored category, lowercased.
const categoryKeySQL = `lower(regexp_replace(btrim(category), '\s+', ' ', 'g'))`

func (r *PostgresCompanyRepository) ListCompaniesByCategory(ctx context.Context, category string) ([]company.Row, error) {
	return r.queryRows(ctx, selectCompany+` WHERE `+categoryKeySQL+` = lower($1) ORDER BY company_id`, company.CategoryKey(category))
}

func (r *PostgresCompanyRepository) SearchCompanies(ctx context.Context, q string) ([]company.Row, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return make([]company.Row, 0), nil
	}
	pattern := "%" + escapeLike(q) + "%"
	return r.queryRows(ctx, selectCompany+` WHERE company_name ILIKE $1 OR short_name ILIKE $1 ORDER BY company_id`, pattern)
}

func (r *PostgresCompanyRepository) FilterCompanies(ctx context.Context, f Filter) ([]company.Row, error) {
	where := make([]string, 0, 4)
	args := make([]any, 0, 4)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if v := company.CategoryKey(f.Category); v != "" {
		add(categoryKeySQL+" = lower($%d)", v)
	}
	if v := strings.TrimSpace(f.ProfitabilityStatus); v != "" {
		add("profitability_status = $%d", v)
	}
	if v := strings.TrimSpace(f.EmployeeSize); v != "" {
		add("employee_size = $%d", v)
	}
	if v := strings.TrimSpace(f.RemoteWorkPolicy); v != "" {
		add("remote_work_policy ILIKE $%d", "%"+escapeLike(v)+"%")
	}

	q := selectCompany
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY company_id`
	return r.queryRows(ctx, q, args...)
}

func (r *PostgresCompanyRepository) ListCompaniesWithTechStack(ctx context.Context) ([]company.Row, error) {
	return r.queryRows(ctx, selectCompany+` WHERE tech_stack_tools_used IS NOT NULL AND tech_stack_tools_used <> '' ORDER BY company_id`)
}

func (r *PostgresCompanyRepository) ListStatsFacets(ctx context.Context) ([]company.StatsFacet, error) {
	rows, err := r.db.Query(ctx, `
SELECT COALESCE(category, ''), COALESCE(profitability_status, ''), COALESCE(hiring_velocity, '')
FROM company`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.StatsFacet, 0)
	for rows.Next() {
		var f company.StatsFacet
		if err := rows.Scan(&f.Category, &f.ProfitabilityStatus, &f.HiringVelocity); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM company WHERE category IS NOT NULL AND category <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	seen := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		c = company.CategoryKey(c)
		if _, ok := seen[strings.ToLower(c)]; ok || c == "" {
			continue
		}
		seen[strings.ToLower(c)] = struct{}{}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Sort(out)
	return out, nil
}

// UpsertCompanies writes rows in one transaction. A stored row is replaced
// as a whole, so columns missing from the input become NULL.
func (r *PostgresCompanyRepository) UpsertCompanies(ctx context.Context, rows []company.Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	n := 0
	err := database.InTx(ctx, r.db, func(tx database.Tx) error {
		for _, row := range rows {
			if row.ID() == "" {
				return fmt.Errorf("upsert company: %w", errMissingID)
			}
			vals := row.Values()
			vals[0] = row.ID()
			if _, err := tx.Exec(ctx, upsertCompany, vals...); err != nil {
				return fmt.Errorf("upsert company %s: %w", row.ID(), err)
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

var errMissingID = errors.New("missing company_id")

func (r *PostgresCompanyRepository) queryRows(ctx context.Context, q string, args ...any) ([]company.Row, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Row, 0)
	for rows.Next() {
		row, err := scanCompanyRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompanyRow(s scanner) (company.Row, error) {
	vals := make([]*string, len(company.Columns))
	dest := make([]any, len(vals))
	for i := range vals {
		dest[i] = &vals[i]
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	row := make(company.Row, len(vals))
	for i, v := range vals {
		if v != nil {
			row[company.Columns[i]] = *v
		}
	}
	return row, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
