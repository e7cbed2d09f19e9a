package usecase

import (
	"context"
	"strings"
	"time"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	lockTTL  = 30 * time.Second
	lockWait = 300 * time.Millisecond
)

type ListParams struct {
	Query               string
	Category            string
	ProfitabilityStatus string
	EmployeeSize        string
	RemoteWorkPolicy    string
	Limit               int
	Offset              int
	OrderBy             string
	Ascending           bool
}

type listKey struct {
	Query               string `json:"q"`
	Category            string `json:"category"`
	ProfitabilityStatus string `json:"profitability_status"`
	EmployeeSize        string `json:"employee_size"`
	RemoteWorkPolicy    string `json:"remote_work_policy"`
	Limit               int    `json:"limit"`
	Offset              int    `json:"offset"`
	OrderBy             string `json:"order_by"`
	Ascending           bool   `json:"ascending"`
}

// Overview bundles the figures shown above the company grid.
type Overview struct {
	Stats      company.Stats `json:"stats"`
	Categories []string      `json:"categories"`
}

type CatalogUsecase interface {
	ListCompanies(ctx context.Context, params ListParams) ([]company.Company, error)
	GetCompany(ctx context.Context, id string) (company.Company, error)
	SearchCompanies(ctx context.Context, q string) ([]company.Company, error)
	CompareCompanies(ctx context.Context, ids []string) ([]company.Company, error)
	CompaniesWithSkills(ctx context.Context) ([]company.Company, error)
	Stats(ctx context.Context) (company.Stats, error)
	Categories(ctx context.Context) ([]string, error)
	Overview(ctx context.Context) (Overview, error)
	Ping(ctx context.Context) error
}

// Catalog reads companies through a cache-aside layer. A cache failure is
// logged and the source is used directly.
type Catalog struct {
	source CompanySource
	cache  CatalogCache
	logger *zap.Logger
}

func NewCatalogUsecase(source CompanySource, cache CatalogCache, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{source: source, cache: cache, logger: logger}
}

func (u *Catalog) ListCompanies(ctx context.Context, params ListParams) ([]company.Company, error) {
	limit := params.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 0 || limit > MaxPageLimit {
		return nil, apperr.InvalidInput("limit must be between 1 and 100", nil)
	}
	if params.Offset < 0 {
		return nil, apperr.InvalidInput("offset must not be negative", nil)
	}
	orderBy := strings.TrimSpace(params.OrderBy)
	if orderBy != "" && !company.IsColumn(orderBy) {
		return nil, apperr.InvalidInput("unknown order_by column: "+orderBy, nil)
	}

	k := listKey{
		Query:               normalizeSearchValue(params.Query),
		Category:            canonicalCategory(params.Category),
		ProfitabilityStatus: strings.TrimSpace(params.ProfitabilityStatus),
		EmployeeSize:        strings.TrimSpace(params.EmployeeSize),
		RemoteWorkPolicy:    normalizeSearchValue(params.RemoteWorkPolicy),
		Limit:               limit,
		Offset:              params.Offset,
		OrderBy:             orderBy,
		Ascending:           params.Ascending,
	}
	filter := repository.Filter{
		Category:            k.Category,
		ProfitabilityStatus: k.ProfitabilityStatus,
		EmployeeSize:        k.EmployeeSize,
		RemoteWorkPolicy:    k.RemoteWorkPolicy,
	}

	op := opList
	switch {
	case filter.ProfitabilityStatus != "" || filter.EmployeeSize != "" || filter.RemoteWorkPolicy != "":
		op = opFilter
	case filter.Category != "":
		op = opCategory
	}

	return cached(ctx, u, op, k, func(ctx context.Context) ([]company.Company, error) {
		var (
			items []company.Company
			err   error
		)
		switch op {
		case opFilter:
			items, err = u.source.FilterCompanies(ctx, filter)
		case opCategory:
			items, err = u.source.CompaniesByCategory(ctx, filter.Category)
		default:
			items, err = u.source.ListCompanies(ctx, repository.ListOptions{
				Limit:     limit,
				Offset:    params.Offset,
				OrderBy:   orderBy,
				Ascending: params.Ascending,
			})
		}
		if err != nil {
			return nil, err
		}
		items = company.FilterListing(items, k.Query, k.Category)
		if op != opList {
			items = page(items, limit, params.Offset)
		}
		return items, nil
	})
}

func (u *Catalog) GetCompany(ctx context.Context, id string) (company.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return company.Company{}, apperr.InvalidInput("company id is required", nil)
	}
	return cached(ctx, u, opByID, id, func(ctx context.Context) (company.Company, error) {
		return u.source.GetCompany(ctx, id)
	})
}

func (u *Catalog) SearchCompanies(ctx context.Context, q string) ([]company.Company, error) {
	q = normalizeSearchValue(q)
	if q == "" {
		return make([]company.Company, 0), nil
	}
	return cached(ctx, u, opSearch, q, func(ctx context.Context) ([]company.Company, error) {
		return u.source.SearchCompanies(ctx, q)
	})
}

// CompareCompanies loads the given companies in selection order. Blank and
// repeated ids are dropped, as are ids the source does not know.
func (u *Catalog) CompareCompanies(ctx context.Context, ids []string) ([]company.Company, error) {
	ids = NormalizeIDs(ids)
	if len(ids) == 0 {
		return make([]company.Company, 0), nil
	}
	return cached(ctx, u, opCompare, ids, func(ctx context.Context) ([]company.Company, error) {
		return u.source.CompaniesByIDs(ctx, ids)
	})
}

func (u *Catalog) CompaniesWithSkills(ctx context.Context) ([]company.Company, error) {
	return cached(ctx, u, opWithSkills, nil, u.source.CompaniesWithSkills)
}

func (u *Catalog) Stats(ctx context.Context) (company.Stats, error) {
	return cached(ctx, u, opStats, nil, u.source.Stats)
}

func (u *Catalog) Categories(ctx context.Context) ([]string, error) {
	return cached(ctx, u, opCategories, nil, u.source.Categories)
}

func (u *Catalog) Overview(ctx context.Context) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.Stats(gctx)
		if err != nil {
			return err
		}
		out.Stats = s
		return nil
	})
	g.Go(func() error {
		c, err := u.Categories(gctx)
		if err != nil {
			return err
		}
		out.Categories = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}

func (u *Catalog) Ping(ctx context.Context) error {
	return u.source.Ping(ctx)
}

// cached serves key from the cache or loads and stores it. Concurrent misses
// on the same key wait briefly for the first loader before loading
// themselves.
func cached[T any](ctx context.Context, u *Catalog, op string, params any, load func(context.Context) (T, error)) (T, error) {
	key := CatalogCacheKey(op, params)
	if u.cache == nil || !u.cache.Available() {
		return load(ctx)
	}

	var hit T
	found, err := u.cache.GetJSON(ctx, key, &hit)
	switch {
	case err != nil:
		u.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	case found:
		u.logger.Debug("cache hit", zap.String("op", op), zap.String("key", key))
		return hit, nil
	default:
		u.logger.Debug("cache miss", zap.String("op", op), zap.String("key", key))
	}

	lockKey := catalogLockKey(key)
	acquired, err := u.cache.SetIfNotExists(ctx, lockKey, "1", lockTTL)
	if err != nil {
		u.logger.Warn("cache lock failed", zap.String("key", lockKey), zap.Error(err))
	} else if !acquired {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-time.After(lockWait):
		}
		var out T
		if ok, err := u.cache.GetJSON(ctx, key, &out); err == nil && ok {
			u.logger.Debug("cache hit after wait", zap.String("key", key))
			return out, nil
		}
		u.logger.Debug("cache lock wait fallback", zap.String("key", lockKey))
	}
	if acquired {
		defer func() {
			if err := u.cache.Delete(context.WithoutCancel(ctx), lockKey); err != nil {
				u.logger.Warn("cache unlock failed", zap.String("key", lockKey), zap.Error(err))
			}
		}()
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := u.cache.SetJSON(ctx, key, v, cacheTTLs[op]); err != nil {
		u.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// NormalizeIDs trims ids and drops blanks and repeats, keeping first
// occurrences in order.
func NormalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func canonicalCategory(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), company.CategoryAll) {
		return ""
	}
	return company.CategoryKey(raw)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return make([]T, 0)
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}
