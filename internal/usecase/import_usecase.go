package usecase

import (
	"context"
	"fmt"
	"strings"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/apperr"

	"go.uber.org/zap"
)

// MaxImportRows bounds a single import batch.
const MaxImportRows = 5000

type CompanyWriter interface {
	UpsertCompanies(ctx context.Context, rows []company.Row) (int, error)
}

type CatalogNotifier interface {
	CatalogUpdated(ctx context.Context, companyIDs []string)
}

type RowError struct {
	Index     int    `json:"index"`
	CompanyID string `json:"company_id,omitempty"`
	Reason    string `json:"reason"`
}

type ImportResult struct {
	Received int        `json:"received"`
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

type ImportUsecase interface {
	Validate(rows []company.Row) ([]company.Row, []RowError)
	ImportRows(ctx context.Context, rows []company.Row) (ImportResult, error)
}

type Import struct {
	writer   CompanyWriter
	cache    CatalogCache
	notifier CatalogNotifier
	logger   *zap.Logger
}

func NewImportUsecase(writer CompanyWriter, cache CatalogCache, notifier CatalogNotifier, logger *zap.Logger) *Import {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Import{writer: writer, cache: cache, notifier: notifier, logger: logger}
}

// Validate splits rows into those that can be stored and per-row errors. A
// row needs a company_id and only known columns. When an id repeats among
// acceptable rows, the last one wins and earlier ones are reported.
func (u *Import) Validate(rows []company.Row) ([]company.Row, []RowError) {
	rejected := make(map[int]RowError)
	lastIndex := make(map[string]int, len(rows))
	for i, r := range rows {
		id := r.ID()
		if id == "" {
			rejected[i] = RowError{Index: i, Reason: "missing company_id"}
			continue
		}
		if unknown := r.UnknownColumns(); len(unknown) > 0 {
			rejected[i] = RowError{Index: i, CompanyID: id, Reason: "unknown columns: " + strings.Join(unknown, ", ")}
			continue
		}
		lastIndex[id] = i
	}

	errs := make([]RowError, 0, len(rejected))
	valid := make([]company.Row, 0, len(rows))
	for i, r := range rows {
		if e, ok := rejected[i]; ok {
			errs = append(errs, e)
			continue
		}
		if last := lastIndex[r.ID()]; last != i {
			errs = append(errs, RowError{Index: i, CompanyID: r.ID(), Reason: fmt.Sprintf("superseded by row %d", last)})
			continue
		}
		valid = append(valid, r)
	}
	return valid, errs
}

// ImportRows stores the valid rows in one batch, then drops cached catalog
// reads and tells subscribers which companies changed.
func (u *Import) ImportRows(ctx context.Context, rows []company.Row) (ImportResult, error) {
	if len(rows) == 0 {
		return ImportResult{}, apperr.InvalidInput("no rows to import", nil)
	}
	if len(rows) > MaxImportRows {
		return ImportResult{}, apperr.InvalidInput(fmt.Sprintf("at most %d rows per import", MaxImportRows), nil)
	}
	if u.writer == nil {
		return ImportResult{}, apperr.Unavailable("import requires the postgres data source", nil)
	}

	valid, errs := u.Validate(rows)
	res := ImportResult{
		Received: len(rows),
		Skipped:  len(rows) - len(valid),
		Errors:   errs,
	}
	if len(valid) == 0 {
		return res, nil
	}

	n, err := u.writer.UpsertCompanies(ctx, valid)
	if err != nil {
		return ImportResult{}, apperr.Unavailable("store imported companies", err)
	}
	res.Imported = n

	if u.cache != nil && u.cache.Available() {
		deleted, err := u.cache.DeleteByPattern(ctx, CatalogCachePattern)
		if err != nil {
			u.logger.Warn("catalog cache invalidation failed", zap.Error(err))
		} else {
			u.logger.Debug("catalog cache invalidated", zap.Int("keys", deleted))
		}
	}

	ids := make([]string, 0, len(valid))
	for _, r := range valid {
		ids = append(ids, r.ID())
	}
	if u.notifier != nil {
		u.notifier.CatalogUpdated(ctx, ids)
	}

	u.logger.Info("companies imported",
		zap.Int("received", res.Received),
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}
