// Package fixture serves the sample company catalog embedded in the binary.
// It backs DATA_SOURCE=fixture and seeds fresh databases.
package fixture

import (
	"cmp"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/repository"
)

//go:embed data/companies.json
var companiesJSON []byte

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Catalog is an in-memory, read-only company source. Returned entities share
// their nested slices with the catalog and must not be modified.
type Catalog struct {
	companies []company.Company
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Decode(companiesJSON)
}

// Decode builds a catalog from a JSON array of companies.
func Decode(b []byte) (*Catalog, error) {
	var in []company.Company
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("decode fixture catalog: %w", err)
	}
	out := make([]company.Company, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			return nil, fmt.Errorf("decode fixture catalog: company without id")
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("decode fixture catalog: duplicate id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		c.Normalize()
		out = append(out, c)
	}
	return &Catalog{companies: out}, nil
}

// All returns every company in file order.
func (c *Catalog) All() []company.Company {
	return slices.Clone(c.companies)
}

func (c *Catalog) ListCompanies(_ context.Context, opts repository.ListOptions) ([]company.Company, error) {
	items := c.All()
	if opts.OrderBy != "" {
		if !company.IsColumn(opts.OrderBy) {
			return nil, apperr.InvalidInput("invalid column: "+opts.OrderBy, repository.ErrInvalidColumn)
		}
		slices.SortStableFunc(items, func(a, b company.Company) int {
			r := cmp.Compare(company.RowFromCompany(a).Get(opts.OrderBy), company.RowFromCompany(b).Get(opts.OrderBy))
			if !opts.Ascending {
				r = -r
			}
			return r
		})
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset := max(opts.Offset, 0)
	if offset >= len(items) {
		return make([]company.Company, 0), nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end], nil
}

func (c *Catalog) GetCompany(_ context.Context, id string) (company.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return company.Company{}, apperr.InvalidInput("company id is required", nil)
	}
	for _, it := range c.companies {
		if it.ID == id {
			return it, nil
		}
	}
	return company.Company{}, apperr.NotFound("company not found", repository.ErrNotFound)
}

// CompaniesByIDs returns the matching companies in the order of ids.
func (c *Catalog) CompaniesByIDs(_ context.Context, ids []string) ([]company.Company, error) {
	out := make([]company.Company, 0, len(ids))
	for _, id := range ids {
		for _, it := range c.companies {
			if it.ID == id {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

func (c *Catalog) CompaniesByCategory(_ context.Context, category string) ([]company.Company, error) {
	if strings.TrimSpace(category) == "" {
		return make([]company.Company, 0), nil
	}
	return c.where(func(it company.Company) bool {
		return it.MatchesCategory(category)
	}), nil
}

func (c *Catalog) SearchCompanies(_ context.Context, q string) ([]company.Company, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return make([]company.Company, 0), nil
	}
	return c.where(func(it company.Company) bool {
		return strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Descriptor), q)
	}), nil
}

func (c *Catalog) FilterCompanies(_ context.Context, f repository.Filter) ([]company.Company, error) {
	category := strings.TrimSpace(f.Category)
	profit := strings.TrimSpace(f.ProfitabilityStatus)
	size := strings.TrimSpace(f.EmployeeSize)
	remote := strings.ToLower(strings.TrimSpace(f.RemoteWorkPolicy))

	return c.where(func(it company.Company) bool {
		if category != "" && !it.MatchesCategory(category) {
			return false
		}
		if profit != "" && it.Financials.ProfitMargin != profit {
			return false
		}
		if size != "" && it.Employees != size {
			return false
		}
		if remote != "" && !strings.Contains(strings.ToLower(it.WorkMode), remote) {
			return false
		}
		return true
	}), nil
}

func (c *Catalog) CompaniesWithSkills(_ context.Context) ([]company.Company, error) {
	return c.where(func(it company.Company) bool {
		return len(it.Technologies) > 0
	}), nil
}

func (c *Catalog) Stats(_ context.Context) (company.Stats, error) {
	facets := make([]company.StatsFacet, 0, len(c.companies))
	for _, it := range c.companies {
		facets = append(facets, company.StatsFacet{
			Category:            it.ListingCategory(),
			ProfitabilityStatus: it.Financials.ProfitMargin,
		})
	}
	return company.ComputeStats(facets), nil
}

func (c *Catalog) Categories(_ context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, it := range c.companies {
		cat := it.ListingCategory()
		if cat == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(cat)]; ok {
			continue
		}
		seen[strings.ToLower(cat)] = struct{}{}
		out = append(out, cat)
	}
	slices.Sort(out)
	return out, nil
}

func (c *Catalog) Ping(context.Context) error {
	return nil
}

func (c *Catalog) where(keep func(company.Company) bool) []company.Company {
	out := make([]company.Company, 0)
	for _, it := range c.companies {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
