package company

// Company is the normalized view of one recruiting company. Every list field
// is non-nil once produced by the mapper or the fixture catalog.
type Company struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Logo       string   `json:"logo"`
	Descriptor string   `json:"descriptor"`
	Category   Category `json:"category"`
	Industry   string   `json:"industry"`
	Type       string   `json:"type"`
	Founded    string   `json:"founded"`
	Employees  string   `json:"employees"`

	// SourceCategory is the CategoryKey of the stored category. It differs
	// from Category when the stored value is not a placement tier.
	SourceCategory string `json:"source_category,omitempty"`

	CompensationRange string  `json:"compensation_range"`
	CTCValue          float64 `json:"ctc_value"`
	FixedComponent    float64 `json:"fixed_component"`
	VariableComponent float64 `json:"variable_component"`
	Bonus             float64 `json:"bonus"`
	ServiceAgreement  string  `json:"service_agreement"`

	Location    string   `json:"location"`
	Locations   []string `json:"locations"`
	WorkMode    string   `json:"work_mode"`
	Eligibility []string `json:"eligibility"`

	Revenue        string `json:"revenue"`
	MarketCap      string `json:"market_cap"`
	GlobalPresence string `json:"global_presence"`

	HiringTrend         []HiringTrend         `json:"hiring_trend"`
	CompensationHistory []CompensationHistory `json:"compensation_history"`
	StudentsSelected    int                   `json:"students_selected"`
	HighestPackage      string                `json:"highest_package"`
	AveragePackage      string                `json:"average_package"`
	DepartmentsSelected []string              `json:"departments_selected"`

	RoleDescription string   `json:"role_description"`
	TeamStructure   string   `json:"team_structure"`
	Technologies    []string `json:"technologies"`
	Department      string   `json:"department"`
	EmploymentType  string   `json:"employment_type"`

	SelectionProcess []SelectionRound `json:"selection_process"`
	Skills           []Skill          `json:"skills"`
	InnovXProjects   []InnovXProject  `json:"innovx_projects"`
	Leadership       []Leader         `json:"leadership"`
	Financials       Financials       `json:"financials"`
	Culture          []CultureItem    `json:"culture"`

	About   string `json:"about"`
	Vision  string `json:"vision"`
	Mission string `json:"mission"`
}

type HiringTrend struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

type CompensationHistory struct {
	Year string  `json:"year"`
	CTC  float64 `json:"ctc"`
}

// SelectionRound is one step of the hiring pipeline. Rounds are kept in the
// order the company runs them.
type SelectionRound struct {
	Title       string   `json:"title"`
	Mode        string   `json:"mode"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Focus       string   `json:"focus,omitempty"`
	Questions   []string `json:"questions,omitempty"`
}

type ProjectDifficulty string

const (
	DifficultyBeginner     ProjectDifficulty = "Beginner"
	DifficultyIntermediate ProjectDifficulty = "Intermediate"
	DifficultyAdvanced     ProjectDifficulty = "Advanced"
)

type InnovXProject struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  ProjectDifficulty `json:"difficulty"`
	Skills      []string          `json:"skills"`
	Relevance   string            `json:"relevance"`
}

type Leader struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio,omitempty"`
}

type Financials struct {
	RevenueGrowth string `json:"revenue_growth"`
	ProfitMargin  string `json:"profit_margin"`
	RnDInvestment string `json:"rnd_investment"`
}

type CultureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// SkillByName returns the first skill with exactly the given name.
func (c Company) SkillByName(name string) (Skill, bool) {
	for _, s := range c.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// CompensationConsistent reports whether fixed + variable + bonus adds up to
// the advertised CTC. Companies with no component data are consistent. The
// result is informational and is never used to reject data.
func (c Company) CompensationConsistent() bool {
	parts := c.FixedComponent + c.VariableComponent + c.Bonus
	if parts == 0 {
		return true
	}
	diff := parts - c.CTCValue
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.5
}

// Normalize replaces nil slices with empty ones so the entity always
// serializes with every list present.
func (c *Company) Normalize() {
	if c == nil {
		return
	}
	c.Locations = nonNil(c.Locations)
	c.Eligibility = nonNil(c.Eligibility)
	c.DepartmentsSelected = nonNil(c.DepartmentsSelected)
	c.Technologies = nonNil(c.Technologies)
	if c.HiringTrend == nil {
		c.HiringTrend = []HiringTrend{}
	}
	if c.CompensationHistory == nil {
		c.CompensationHistory = []CompensationHistory{}
	}
	if c.SelectionProcess == nil {
		c.SelectionProcess = []SelectionRound{}
	}
	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	for i := range c.Skills {
		c.Skills[i].Topics = nonNil(c.Skills[i].Topics)
	}
	if c.InnovXProjects == nil {
		c.InnovXProjects = []InnovXProject{}
	}
	for i := range c.InnovXProjects {
		c.InnovXProjects[i].Skills = nonNil(c.InnovXProjects[i].Skills)
	}
	if c.Leadership == nil {
		c.Leadership = []Leader{}
	}
	if c.Culture == nil {
		c.Culture = []CultureItem{}
	}
	if c.Category == "" {
		c.Category = DefaultCategory
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
