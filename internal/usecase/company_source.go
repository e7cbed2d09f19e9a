package usecase

import (
	"context"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/repository"
)

// CompanySource is the read side of the catalog. Implementations return
// apperr-typed errors: NotFound for a missing id, Unavailable when the
// backing store cannot be reached.
type CompanySource interface {
	ListCompanies(ctx context.Context, opts repository.ListOptions) ([]company.Company, error)
	GetCompany(ctx context.Context, id string) (company.Company, error)
	CompaniesByIDs(ctx context.Context, ids []string) ([]company.Company, error)
	CompaniesByCategory(ctx context.Context, category string) ([]company.Company, error)
	SearchCompanies(ctx context.Context, q string) ([]company.Company, error)
	FilterCompanies(ctx context.Context, f repository.Filter) ([]company.Company, error)
	CompaniesWithSkills(ctx context.Context) ([]company.Company, error)
	Stats(ctx context.Context) (company.Stats, error)
	Categories(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
