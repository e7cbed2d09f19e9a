// Package mapper turns company table rows into company entities.
//
// Mapping is total for any row with a company_id: malformed or missing
// columns fall back to empty values field by field. Fields the flat schema
// cannot express are derived through Strategies so each one can be completed
// on its own.
package mapper

import (
	"errors"
	"slices"

	"placement-portal/internal/domain/company"

	"go.uber.org/zap"
)

// ErrUnmappable is returned for a row without a primary key.
var ErrUnmappable = errors.New("unmappable company row: missing company_id")

type Mapper struct {
	strategies Strategies
	completed  map[string]struct{}
	logger     *zap.Logger
}

type Option func(*Mapper) error

func WithLogger(l *zap.Logger) Option {
	return func(m *Mapper) error {
		if l != nil {
			m.logger = l
		}
		return nil
	}
}

// WithFieldColumns completes the named fields from the given source columns.
func WithFieldColumns(fields map[string]string) Option {
	return func(m *Mapper) error {
		for field, column := range fields {
			if err := m.strategies.Use(field, column); err != nil {
				return err
			}
			m.completed[field] = struct{}{}
		}
		return nil
	}
}

// WithStrategies replaces the strategy set wholesale. Every field counts as
// completed afterwards.
func WithStrategies(s Strategies) Option {
	return func(m *Mapper) error {
		m.strategies = s
		for _, f := range Fields() {
			m.completed[f] = struct{}{}
		}
		return nil
	}
}

func New(opts ...Option) (*Mapper, error) {
	m := &Mapper{
		strategies: DefaultStrategies(),
		completed:  map[string]struct{}{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Gaps returns the fields still served by their empty default.
func (m *Mapper) Gaps() []string {
	out := make([]string, 0)
	for _, f := range Fields() {
		if _, ok := m.completed[f]; !ok {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}

// MapRow maps one row. The only error is ErrUnmappable.
func (m *Mapper) MapRow(row company.Row) (company.Company, error) {
	id := row.ID()
	if id == "" {
		return company.Company{}, ErrUnmappable
	}

	rawCategory := row.Get(company.ColCategory)
	category, ok := company.ParseCategory(rawCategory)
	if !ok && rawCategory != "" {
		m.logger.Debug("category outside placement tiers, using default",
			zap.String("company_id", id),
			zap.String("default", string(company.DefaultCategory)),
		)
	}

	c := company.Company{
		ID:         id,
		Name:       row.Get(company.ColCompanyName),
		Logo:       row.Get(company.ColLogo),
		Descriptor: row.First(company.ColOverview, company.ColShortName),
		Category:   category,
		Industry:   row.Get(company.ColFocusSectors),
		Type:       row.Get(company.ColNatureOfCompany),
		Founded:    row.Get(company.ColYearOfIncorporation),
		Employees:  row.Get(company.ColEmployeeSize),

		SourceCategory:    company.CategoryKey(rawCategory),
		CompensationRange: row.Get(company.ColFixedVsVariablePay),

		Location:  row.Get(company.ColHeadquarters),
		Locations: ParseList(row.Get(company.ColOfficeLocations)),
		WorkMode:  row.Get(company.ColRemoteWorkPolicy),

		Revenue:        row.Get(company.ColAnnualRevenues),
		MarketCap:      row.Get(company.ColCompanyValuation),
		GlobalPresence: row.Get(company.ColCountriesOperatingIn),

		RoleDescription: row.Get(company.ColServicesOfferings),
		TeamStructure:   row.Get(company.ColWorkCulture),
		Technologies:    ParseList(row.Get(company.ColTechStack)),

		Financials: company.Financials{
			RevenueGrowth: row.Get(company.ColYoYGrowthRate),
			ProfitMargin:  row.Get(company.ColProfitabilityStatus),
			RnDInvestment: row.Get(company.ColRnDInvestment),
		},

		About:   row.Get(company.ColOverview),
		Vision:  row.Get(company.ColVision),
		Mission: row.Get(company.ColMission),
	}

	s := m.strategies
	c.Eligibility = derive(m, FieldEligibility, s.Eligibility, row)
	c.HiringTrend = derive(m, FieldHiringTrend, s.HiringTrend, row)
	c.CompensationHistory = derive(m, FieldCompensationHistory, s.CompensationHistory, row)
	c.DepartmentsSelected = derive(m, FieldDepartmentsSelected, s.DepartmentsSelected, row)
	c.SelectionProcess = derive(m, FieldSelectionProcess, s.SelectionProcess, row)
	c.Skills = derive(m, FieldSkills, s.Skills, row)
	c.InnovXProjects = derive(m, FieldInnovXProjects, s.InnovXProjects, row)
	c.Leadership = derive(m, FieldLeadership, s.Leadership, row)
	c.Culture = derive(m, FieldCulture, s.Culture, row)
	c.ServiceAgreement = derive(m, FieldServiceAgreement, s.ServiceAgreement, row)
	c.Department = derive(m, FieldDepartment, s.Department, row)
	c.EmploymentType = derive(m, FieldEmploymentType, s.EmploymentType, row)

	comp := derive(m, FieldCompensation, s.Compensation, row)
	c.CTCValue = comp.CTC
	c.FixedComponent = comp.Fixed
	c.VariableComponent = comp.Variable
	c.Bonus = comp.Bonus

	pl := derive(m, FieldPlacement, s.Placement, row)
	c.StudentsSelected = pl.StudentsSelected
	c.HighestPackage = pl.HighestPackage
	c.AveragePackage = pl.AveragePackage

	c.Normalize()
	return c, nil
}

// MapRows maps rows in order, skipping the ones without a primary key.
func (m *Mapper) MapRows(rows []company.Row) []company.Company {
	out := make([]company.Company, 0, len(rows))
	for i, row := range rows {
		c, err := m.MapRow(row)
		if err != nil {
			m.logger.Warn("skipping unmappable company row", zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, c)
	}
	return out
}

func derive[T any](m *Mapper, field string, s Strategy[T], row company.Row) T {
	if s == nil {
		var zero T
		return zero
	}
	v, err := s(row)
	if err != nil {
		m.logger.Warn("field derivation fell back to default",
			zap.String("field", field),
			zap.String("company_id", row.ID()),
			zap.Error(err),
		)
	}
	return v
}

var defaultMapper = func() *Mapper {
	m, _ := New()
	return m
}()

// MapRow maps one row with the default strategies.
func MapRow(row company.Row) (company.Company, error) {
	return defaultMapper.MapRow(row)
}

// MapRows maps rows with the default strategies.
func MapRows(rows []company.Row) []company.Company {
	return defaultMapper.MapRows(rows)
}
