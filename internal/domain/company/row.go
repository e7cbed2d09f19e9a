package company

import (
	"slices"
	"strings"
	"unicode"
)

// Row is one record of the company table keyed by column name. A column that
// is absent or NULL in the source is simply missing from the map.
type Row map[string]string

// Columns read by the mapper and the repository.
const (
	ColCompanyID            = "company_id"
	ColCompanyName          = "company_name"
	ColShortName            = "short_name"
	ColLogo                 = "logo"
	ColCategory             = "category"
	ColYearOfIncorporation  = "year_of_incorporation"
	ColOverview             = "overview_of_the_company"
	ColNatureOfCompany      = "nature_of_company"
	ColHeadquarters         = "company_headquarters"
	ColCountriesOperatingIn = "countries_operating_in"
	ColOfficeLocations      = "office_locations"
	ColEmployeeSize         = "employee_size"
	ColHiringVelocity       = "hiring_velocity"
	ColFocusSectors         = "focus_sectors_industries"
	ColServicesOfferings    = "services_offerings_products"
	ColVision               = "vision"
	ColMission              = "mission"
	ColKeyBusinessLeaders   = "key_business_leaders"
	ColAnnualRevenues       = "annual_revenues"
	ColYoYGrowthRate        = "year_over_year_growth_rate"
	ColProfitabilityStatus  = "profitability_status"
	ColCompanyValuation     = "company_valuation"
	ColRnDInvestment        = "r_and_d_investment"
	ColTechStack            = "tech_stack_tools_used"
	ColWorkCulture          = "work_culture"
	ColRemoteWorkPolicy     = "remote_work_policy"
	ColFixedVsVariablePay   = "fixed_vs_variable_pay"
)

// Get returns the value of col, or "" when the column is missing.
func (r Row) Get(col string) string {
	if r == nil {
		return ""
	}
	return r[col]
}

// First returns the first non-empty value among cols.
func (r Row) First(cols ...string) string {
	for _, c := range cols {
		if v := r.Get(c); v != "" {
			return v
		}
	}
	return ""
}

// ID returns the trimmed primary key.
func (r Row) ID() string {
	return strings.TrimSpace(r.Get(ColCompanyID))
}

// UnknownColumns returns the sorted keys of r that are not company columns.
func (r Row) UnknownColumns() []string {
	var out []string
	for k := range r {
		if !IsColumn(k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Values returns the row values aligned with Columns. Missing columns are
// returned as nil so they are stored as NULL.
func (r Row) Values() []any {
	out := make([]any, len(Columns))
	for i, c := range Columns {
		if v, ok := r[c]; ok {
			out[i] = v
		}
	}
	return out
}

// RowFromCompany projects c onto the columns the mapper reads. Lists are
// joined with ", "; a comma inside an element becomes a space, so such an
// element does not split back unchanged. The source has no descriptor
// column, so Descriptor only survives when About is empty.
func RowFromCompany(c Company) Row {
	r := Row{}
	set := func(col, v string) {
		if v != "" {
			r[col] = v
		}
	}
	set(ColCompanyID, c.ID)
	set(ColCompanyName, c.Name)
	set(ColLogo, c.Logo)
	switch {
	case c.SourceCategory != "":
		set(ColCategory, c.SourceCategory)
	case c.Category != CategoryUncategorized:
		set(ColCategory, string(c.Category))
	}
	set(ColOverview, c.About)
	if c.About == "" {
		set(ColShortName, c.Descriptor)
	}
	set(ColFocusSectors, c.Industry)
	set(ColNatureOfCompany, c.Type)
	set(ColYearOfIncorporation, c.Founded)
	set(ColEmployeeSize, c.Employees)
	set(ColFixedVsVariablePay, c.CompensationRange)
	set(ColHeadquarters, c.Location)
	set(ColOfficeLocations, joinList(c.Locations))
	set(ColRemoteWorkPolicy, c.WorkMode)
	set(ColAnnualRevenues, c.Revenue)
	set(ColCompanyValuation, c.MarketCap)
	set(ColCountriesOperatingIn, c.GlobalPresence)
	set(ColServicesOfferings, c.RoleDescription)
	set(ColWorkCulture, c.TeamStructure)
	set(ColTechStack, joinList(c.Technologies))
	set(ColYoYGrowthRate, c.Financials.RevenueGrowth)
	set(ColProfitabilityStatus, c.Financials.ProfitMargin)
	set(ColRnDInvestment, c.Financials.RnDInvestment)
	set(ColVision, c.Vision)
	set(ColMission, c.Mission)
	return r
}

func joinList(items []string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimFunc(it, unicode.IsSpace)
		if it == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(it, ",", " "))
	}
	return strings.Join(parts, ", ")
}
