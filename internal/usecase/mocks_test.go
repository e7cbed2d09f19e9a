package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"time"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/repository"
)

type mockSource struct {
	companies []company.Company
	err       error

	mu    sync.Mutex
	calls map[string]int

	gotList   repository.ListOptions
	gotFilter repository.Filter
}

func (m *mockSource) hit(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[op]++
}

func (m *mockSource) count(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *mockSource) ListCompanies(_ context.Context, opts repository.ListOptions) ([]company.Company, error) {
	m.hit("list")
	m.gotList = opts
	return m.companies, m.err
}

func (m *mockSource) GetCompany(_ context.Context, id string) (company.Company, error) {
	m.hit("get")
	if m.err != nil {
		return company.Company{}, m.err
	}
	for _, c := range m.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, apperr.NotFound("company not found", nil)
}

func (m *mockSource) CompaniesByIDs(_ context.Context, ids []string) ([]company.Company, error) {
	m.hit("ids")
	if m.err != nil {
		return nil, m.err
	}
	out := make([]company.Company, 0)
	for _, id := range ids {
		for _, c := range m.companies {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (m *mockSource) CompaniesByCategory(_ context.Context, category string) ([]company.Company, error) {
	m.hit("category")
	out := make([]company.Company, 0)
	for _, c := range m.companies {
		if c.MatchesCategory(category) {
			out = append(out, c)
		}
	}
	return out, m.err
}

func (m *mockSource) SearchCompanies(context.Context, string) ([]company.Company, error) {
	m.hit("search")
	return m.companies, m.err
}

func (m *mockSource) FilterCompanies(_ context.Context, f repository.Filter) ([]company.Company, error) {
	m.hit("filter")
	m.gotFilter = f
	return m.companies, m.err
}

func (m *mockSource) CompaniesWithSkills(context.Context) ([]company.Company, error) {
	m.hit("with-skills")
	return m.companies, m.err
}

func (m *mockSource) Stats(context.Context) (company.Stats, error) {
	m.hit("stats")
	if m.err != nil {
		return company.Stats{}, m.err
	}
	facets := make([]company.StatsFacet, 0, len(m.companies))
	for _, c := range m.companies {
		facets = append(facets, company.StatsFacet{Category: c.ListingCategory()})
	}
	return company.ComputeStats(facets), nil
}

func (m *mockSource) Categories(context.Context) ([]string, error) {
	m.hit("categories")
	return []string{"Dream", "Marquee"}, m.err
}

func (m *mockSource) Ping(context.Context) error { return m.err }

// mockCache is an in-memory CatalogCache.
type mockCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	readErr error
	off     bool
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mockCache) Available() bool { return !m.off }

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return false, m.readErr
	}
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = []byte(value)
	return true, nil
}

func (m *mockCache) keys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

var errSourceDown = errors.New("source down")

func sampleCompanies() []company.Company {
	mk := func(id, name string, cat company.Category, skills ...company.Skill) company.Company {
		c := company.Company{ID: id, Name: name, Category: cat, Skills: skills}
		c.Normalize()
		return c
	}
	return []company.Company{
		mk("google", "Google", company.CategoryMarquee,
			company.Skill{Name: "DSA", BloomLevel: company.BloomEvaluation, Level: 9, Proficiency: 8},
			company.Skill{Name: "System Design", BloomLevel: company.BloomCreation, Level: 8, Proficiency: 7},
		),
		mk("razorpay", "Razorpay", company.CategoryDream,
			company.Skill{Name: "DSA", BloomLevel: company.BloomApplication, Level: 7, Proficiency: 6},
			company.Skill{Name: "APIs", BloomLevel: company.BloomApplication, Level: 6, Proficiency: 6},
		),
		mk("zeta", "Zeta", company.CategoryStartup),
	}
}
