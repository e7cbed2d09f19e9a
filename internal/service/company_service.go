package service

import (
	"context"
	"errors"
	"strings"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/mapper"
	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/repository"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// CompanyService serves the catalog from the company table, mapping each
// row into the normalized entity.
type CompanyService struct {
	repo   repository.CompanyRepository
	mapper *mapper.Mapper
	db     Pinger
}

func NewCompanyService(repo repository.CompanyRepository, m *mapper.Mapper, db Pinger) *CompanyService {
	if m == nil {
		m, _ = mapper.New()
	}
	return &CompanyService{repo: repo, mapper: m, db: db}
}

func (s *CompanyService) ListCompanies(ctx context.Context, opts repository.ListOptions) ([]company.Company, error) {
	rows, err := s.repo.ListCompanies(ctx, opts)
	if err != nil {
		return nil, wrap("list companies", err)
	}
	return s.mapper.MapRows(rows), nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id string) (company.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return company.Company{}, apperr.InvalidInput("company id is required", nil)
	}
	row, err := s.repo.GetCompanyByID(ctx, id)
	if err != nil {
		return company.Company{}, wrap("get company", err)
	}
	c, err := s.mapper.MapRow(row)
	if err != nil {
		return company.Company{}, apperr.Internal("map company", err)
	}
	return c, nil
}

func (s *CompanyService) CompaniesByIDs(ctx context.Context, ids []string) ([]company.Company, error) {
	rows, err := s.repo.ListCompaniesByIDs(ctx, ids)
	if err != nil {
		return nil, wrap("list companies by id", err)
	}
	return s.mapper.MapRows(rows), nil
}

func (s *CompanyService) CompaniesByCategory(ctx context.Context, category string) ([]company.Company, error) {
	rows, err := s.repo.ListCompaniesByCategory(ctx, category)
	if err != nil {
		return nil, wrap("list companies by category", err)
	}
	return s.mapper.MapRows(rows), nil
}

func (s *CompanyService) SearchCompanies(ctx context.Context, q string) ([]company.Company, error) {
	rows, err := s.repo.SearchCompanies(ctx, q)
	if err != nil {
		return nil, wrap("search companies", err)
	}
	return s.mapper.MapRows(rows), nil
}

func (s *CompanyService) FilterCompanies(ctx context.Context, f repository.Filter) ([]company.Company, error) {
	rows, err := s.repo.FilterCompanies(ctx, f)
	if err != nil {
		return nil, wrap("filter companies", err)
	}
	return s.mapper.MapRows(rows), nil
}

func (s *CompanyService) CompaniesWithSkills(ctx context.Context) ([]company.Company, error) {
	rows, err := s.repo.ListCompaniesWithTechStack(ctx)
	if err != nil {
		return nil, wrap("list companies with tech stack", err)
	}
	return s.mapper.MapRows(rows), nil
}

func (s *CompanyService) Stats(ctx context.Context) (company.Stats, error) {
	facets, err := s.repo.ListStatsFacets(ctx)
	if err != nil {
		return company.Stats{}, wrap("company stats", err)
	}
	return company.ComputeStats(facets), nil
}

func (s *CompanyService) Categories(ctx context.Context) ([]string, error) {
	out, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, wrap("list categories", err)
	}
	return out, nil
}

func (s *CompanyService) Ping(ctx context.Context) error {
	if s.db == nil {
		return apperr.Unavailable("database not configured", nil)
	}
	if err := s.db.Ping(ctx); err != nil {
		return apperr.Unavailable("database unreachable", err)
	}
	return nil
}

func wrap(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("company not found", err)
	case errors.Is(err, repository.ErrInvalidColumn):
		return apperr.InvalidInput(err.Error(), err)
	case errors.Is(err, context.Canceled):
		return apperr.Internal(op+": canceled", err)
	default:
		return apperr.Unavailable(op+" failed", err)
	}
}
