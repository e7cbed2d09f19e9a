package mapper

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"placement-portal/internal/domain/company"

	"github.com/xeipuuv/gojsonschema"
)

// Strategy derives one Company field from a row. The returned value is always
// usable; a non-nil error only explains why a fallback was chosen.
type Strategy[T any] func(row company.Row) (T, error)

// Compensation groups the numeric CTC breakdown.
type Compensation struct {
	CTC      float64 `json:"ctc"`
	Fixed    float64 `json:"fixed"`
	Variable float64 `json:"variable"`
	Bonus    float64 `json:"bonus"`
}

// Placement groups the campus placement record.
type Placement struct {
	StudentsSelected int    `json:"students_selected"`
	HighestPackage   string `json:"highest_package"`
	AveragePackage   string `json:"average_package"`
}

// Names of the fields served by Strategies.
const (
	FieldEligibility         = "eligibility"
	FieldHiringTrend         = "hiring_trend"
	FieldCompensationHistory = "compensation_history"
	FieldDepartmentsSelected = "departments_selected"
	FieldSelectionProcess    = "selection_process"
	FieldSkills              = "skills"
	FieldInnovXProjects      = "innovx_projects"
	FieldLeadership          = "leadership"
	FieldCulture             = "culture"
	FieldCompensation        = "compensation"
	FieldPlacement           = "placement"
	FieldServiceAgreement    = "service_agreement"
	FieldDepartment          = "department"
	FieldEmploymentType      = "employment_type"
)

// Strategies holds the derivation of every field the flat company schema
// cannot express yet. DefaultStrategies serves each of them with its empty
// value; a field is completed by swapping in another Strategy.
type Strategies struct {
	Eligibility         Strategy[[]string]
	HiringTrend         Strategy[[]company.HiringTrend]
	CompensationHistory Strategy[[]company.CompensationHistory]
	DepartmentsSelected Strategy[[]string]
	SelectionProcess    Strategy[[]company.SelectionRound]
	Skills              Strategy[[]company.Skill]
	InnovXProjects      Strategy[[]company.InnovXProject]
	Leadership          Strategy[[]company.Leader]
	Culture             Strategy[[]company.CultureItem]
	Compensation        Strategy[Compensation]
	Placement           Strategy[Placement]
	ServiceAgreement    Strategy[string]
	Department          Strategy[string]
	EmploymentType      Strategy[string]
}

func DefaultStrategies() Strategies {
	return Strategies{
		Eligibility:         EmptyList[string](),
		HiringTrend:         EmptyList[company.HiringTrend](),
		CompensationHistory: EmptyList[company.CompensationHistory](),
		DepartmentsSelected: EmptyList[string](),
		SelectionProcess:    EmptyList[company.SelectionRound](),
		Skills:              EmptyList[company.Skill](),
		InnovXProjects:      EmptyList[company.InnovXProject](),
		Leadership:          EmptyList[company.Leader](),
		Culture:             EmptyList[company.CultureItem](),
		Compensation:        Zero[Compensation](),
		Placement:           Zero[Placement](),
		ServiceAgreement:    Zero[string](),
		Department:          Zero[string](),
		EmploymentType:      Zero[string](),
	}
}

// Fields returns every strategy field name.
func Fields() []string {
	return []string{
		FieldEligibility,
		FieldHiringTrend,
		FieldCompensationHistory,
		FieldDepartmentsSelected,
		FieldSelectionProcess,
		FieldSkills,
		FieldInnovXProjects,
		FieldLeadership,
		FieldCulture,
		FieldCompensation,
		FieldPlacement,
		FieldServiceAgreement,
		FieldDepartment,
		FieldEmploymentType,
	}
}

// EmptyList always yields a fresh empty slice.
func EmptyList[T any]() Strategy[[]T] {
	return func(company.Row) ([]T, error) {
		return []T{}, nil
	}
}

// Zero always yields the zero value of T.
func Zero[T any]() Strategy[T] {
	return func(company.Row) (T, error) {
		var zero T
		return zero, nil
	}
}

// TextColumn copies a column verbatim.
func TextColumn(column string) Strategy[string] {
	return func(row company.Row) (string, error) {
		return row.Get(column), nil
	}
}

// JSONColumn decodes a JSON encoded column. Values that fail schema
// validation or decoding yield fallback.
func JSONColumn[T any](column string, schema *gojsonschema.Schema, fallback func() T) Strategy[T] {
	return func(row company.Row) (T, error) {
		v, err := ParseJSONWithSchema(row.Get(column), schema, fallback())
		if err != nil {
			return v, fmt.Errorf("column %s: %w", column, err)
		}
		return v, nil
	}
}

var ErrUnknownField = errors.New("unknown mapper field")

// Use points field at a source column. List and structured fields expect
// JSON in that column; scalar text fields take the column value as is.
func (s *Strategies) Use(field, column string) error {
	column = strings.TrimSpace(column)
	if !company.IsColumn(column) {
		return fmt.Errorf("field %s: unknown column %q", field, column)
	}

	switch field {
	case FieldEligibility:
		s.Eligibility = JSONColumn(column, mustSchema("string_list"), emptySlice[string])
	case FieldHiringTrend:
		s.HiringTrend = JSONColumn(column, mustSchema("hiring_trend"), emptySlice[company.HiringTrend])
	case FieldCompensationHistory:
		s.CompensationHistory = JSONColumn(column, mustSchema("compensation_history"), emptySlice[company.CompensationHistory])
	case FieldDepartmentsSelected:
		s.DepartmentsSelected = JSONColumn(column, mustSchema("string_list"), emptySlice[string])
	case FieldSelectionProcess:
		s.SelectionProcess = JSONColumn(column, mustSchema("selection_process"), emptySlice[company.SelectionRound])
	case FieldSkills:
		s.Skills = validSkills(JSONColumn(column, mustSchema("skills"), emptySlice[company.Skill]))
	case FieldInnovXProjects:
		s.InnovXProjects = JSONColumn(column, mustSchema("innovx_projects"), emptySlice[company.InnovXProject])
	case FieldLeadership:
		s.Leadership = JSONColumn(column, mustSchema("leadership"), emptySlice[company.Leader])
	case FieldCulture:
		s.Culture = JSONColumn(column, mustSchema("culture"), emptySlice[company.CultureItem])
	case FieldCompensation:
		s.Compensation = JSONColumn(column, mustSchema("compensation"), zeroValue[Compensation])
	case FieldPlacement:
		s.Placement = JSONColumn(column, mustSchema("placement"), zeroValue[Placement])
	case FieldServiceAgreement:
		s.ServiceAgreement = TextColumn(column)
	case FieldDepartment:
		s.Department = TextColumn(column)
	case FieldEmploymentType:
		s.EmploymentType = TextColumn(column)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// validSkills drops the whole list when any skill is outside its bounds.
func validSkills(next Strategy[[]company.Skill]) Strategy[[]company.Skill] {
	return func(row company.Row) ([]company.Skill, error) {
		skills, err := next(row)
		if err != nil {
			return skills, err
		}
		for _, s := range skills {
			if verr := s.Validate(); verr != nil {
				return []company.Skill{}, fmt.Errorf("skill %q: %w", s.Name, verr)
			}
		}
		return skills, nil
	}
}

func emptySlice[T any]() []T { return []T{} }

func zeroValue[T any]() T {
	var zero T
	return zero
}

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*gojsonschema.Schema{}
)

// mustSchema compiles an embedded schema. The schemas ship with the binary,
// so a compile failure is a programming error.
func mustSchema(name string) *gojsonschema.Schema {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if s, ok := schemaCache[name]; ok {
		return s
	}
	b, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		panic(fmt.Sprintf("mapper: missing schema %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("mapper: invalid schema %s: %v", name, err))
	}
	schemaCache[name] = s
	return s
}

// ParseFieldColumns parses "field=column,field=column" into a map.
func ParseFieldColumns(raw string) (map[string]string, error) {
	out := map[string]string{}
	for _, pair := range ParseList(raw) {
		field, column, ok := strings.Cut(pair, "=")
		field = strings.TrimSpace(field)
		column = strings.TrimSpace(column)
		if !ok || field == "" || column == "" {
			return nil, fmt.Errorf("invalid field mapping %q", pair)
		}
		if !slices.Contains(Fields(), field) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		out[field] = column
	}
	return out, nil
}
