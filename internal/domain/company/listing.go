package company

import "strings"

// MatchesSearch reports whether q occurs, ignoring case, in the company's
// name, descriptor or industry. A blank q matches everything.
func (c Company) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Descriptor), q) ||
		strings.Contains(strings.ToLower(c.Industry), q)
}

// ListingCategory is the category key the company is listed under.
func (c Company) ListingCategory() string {
	if c.SourceCategory != "" {
		return CategoryKey(c.SourceCategory)
	}
	return string(c.Category)
}

// MatchesCategory reports whether the company belongs to category. "" and
// CategoryAll match every company.
func (c Company) MatchesCategory(category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return true
	}
	return strings.EqualFold(c.ListingCategory(), CategoryKey(category))
}

// FilterListing keeps the companies matching both q and category, in input
// order.
func FilterListing(in []Company, q, category string) []Company {
	out := make([]Company, 0, len(in))
	for _, c := range in {
		if c.MatchesCategory(category) && c.MatchesSearch(q) {
			out = append(out, c)
		}
	}
	return out
}

// Stats aggregates the catalog by a few descriptive columns.
type Stats struct {
	TotalCount       int            `json:"total_count"`
	ByCategory       map[string]int `json:"by_category"`
	ByProfitability  map[string]int `json:"by_profitability"`
	ByHiringVelocity map[string]int `json:"by_hiring_velocity"`
}

// StatsFacet is the slice of a company needed to compute Stats.
type StatsFacet struct {
	Category            string
	ProfitabilityStatus string
	HiringVelocity      string
}

// ComputeStats counts facets. Empty values are left out of the maps but
// still count towards TotalCount.
func ComputeStats(facets []StatsFacet) Stats {
	s := Stats{
		TotalCount:       len(facets),
		ByCategory:       map[string]int{},
		ByProfitability:  map[string]int{},
		ByHiringVelocity: map[string]int{},
	}
	for _, f := range facets {
		if k := CategoryKey(f.Category); k != "" {
			s.ByCategory[k]++
		}
		if f.ProfitabilityStatus != "" {
			s.ByProfitability[f.ProfitabilityStatus]++
		}
		if f.HiringVelocity != "" {
			s.ByHiringVelocity[f.HiringVelocity]++
		}
	}
	return s
}
