package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
		ok   bool
	}{
		{"Marquee", CategoryMarquee, true},
		{"  super   dream ", CategorySuperDream, true},
		{"it", CategoryIT, true},
		{"", DefaultCategory, false},
		{"MSME", DefaultCategory, false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
	}
}

func TestSkillValidate(t *testing.T) {
	ok := Skill{Name: "Algorithms", BloomLevel: BloomEvaluation, Level: 8, Proficiency: 9}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Level = 11
	assert.Error(t, bad.Validate())

	bad = ok
	bad.BloomLevel = "XX"
	assert.Error(t, bad.Validate())
}

func TestBloomLabels(t *testing.T) {
	assert.Equal(t, "Conceptual Understanding", BloomConceptual.Label())
	assert.Equal(t, "Creation", BloomCreation.Label())
	assert.Len(t, BloomLevels(), 5)
	assert.False(t, BloomLevel("ZZ").Valid())
}

func TestSkillClone_DoesNotShareTopics(t *testing.T) {
	s := Skill{Name: "Go", Topics: []string{"channels"}}
	c := s.Clone()
	c.Topics[0] = "mutated"
	assert.Equal(t, "channels", s.Topics[0])
}

func TestCompensationConsistent(t *testing.T) {
	c := Company{CTCValue: 4800000, FixedComponent: 3200000, VariableComponent: 1000000, Bonus: 600000}
	assert.True(t, c.CompensationConsistent())

	c.Bonus = 0
	assert.False(t, c.CompensationConsistent())

	assert.True(t, Company{}.CompensationConsistent())
}

func TestSkillByName_FirstWins(t *testing.T) {
	c := Company{Skills: []Skill{
		{Name: "Go", Level: 3},
		{Name: "Go", Level: 9},
	}}
	s, ok := c.SkillByName("Go")
	require.True(t, ok)
	assert.Equal(t, 3, s.Level)

	_, ok = c.SkillByName("go")
	assert.False(t, ok)
}

func TestNormalize_FillsNilLists(t *testing.T) {
	var c Company
	c.Normalize()
	assert.NotNil(t, c.Locations)
	assert.NotNil(t, c.Skills)
	assert.NotNil(t, c.SelectionProcess)
	assert.NotNil(t, c.Culture)
	assert.Equal(t, DefaultCategory, c.Category)
}

func TestFilterListing(t *testing.T) {
	in := []Company{
		{ID: "g", Name: "Google", Descriptor: "Search", Industry: "Technology", Category: CategoryMarquee},
		{ID: "i", Name: "Infosys", Descriptor: "IT services", Industry: "IT Services", Category: CategoryCore},
		{ID: "r", Name: "Razorpay", Descriptor: "Payments", Industry: "Fintech", Category: CategoryDream},
	}

	got := FilterListing(in, "tech", CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "g", got[0].ID)

	got = FilterListing(in, "services", "Core")
	require.Len(t, got, 1)
	assert.Equal(t, "i", got[0].ID)

	got = FilterListing(in, "", "")
	assert.Len(t, got, 3)

	got = FilterListing(in, "pay", "Marquee")
	assert.Empty(t, got)
}

func TestMatchesCategory_UsesCategoryKey(t *testing.T) {
	product := Company{ID: "p", Category: CategoryUncategorized, SourceCategory: "Product"}
	dream := Company{ID: "d", Category: CategorySuperDream, SourceCategory: "Super Dream"}
	fixture := Company{ID: "f", Category: CategoryDream}

	assert.Equal(t, "Product", product.ListingCategory())
	assert.Equal(t, "Dream", fixture.ListingCategory())

	assert.True(t, product.MatchesCategory("product"))
	assert.False(t, product.MatchesCategory(string(CategoryUncategorized)))
	assert.True(t, dream.MatchesCategory(" super   DREAM"))
	assert.True(t, fixture.MatchesCategory("dream"))
	assert.False(t, fixture.MatchesCategory("super dream"))
	assert.True(t, fixture.MatchesCategory("all"))

	assert.Equal(t, "Super Dream", CategoryKey("super  dream "))
	assert.Equal(t, "Product Co", CategoryKey(" Product   Co"))
}

func TestComputeStats_KeysCategories(t *testing.T) {
	s := ComputeStats([]StatsFacet{{Category: "super dream"}, {Category: "Super Dream"}, {Category: " Product "}})
	assert.Equal(t, map[string]int{"Super Dream": 2, "Product": 1}, s.ByCategory)
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats([]StatsFacet{
		{Category: "Startup", ProfitabilityStatus: "Profitable", HiringVelocity: "High"},
		{Category: "Startup", ProfitabilityStatus: "", HiringVelocity: "Low"},
		{Category: "", ProfitabilityStatus: "Loss", HiringVelocity: ""},
	})
	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, map[string]int{"Startup": 2}, s.ByCategory)
	assert.Equal(t, map[string]int{"Profitable": 1, "Loss": 1}, s.ByProfitability)
	assert.Equal(t, map[string]int{"High": 1, "Low": 1}, s.ByHiringVelocity)
}

func TestRowFromCompany(t *testing.T) {
	r := RowFromCompany(Company{
		ID:           "google",
		Name:         "Google",
		Category:     CategoryMarquee,
		About:        "Search company",
		Locations:    []string{"Bangalore", " Hyderabad "},
		Technologies: []string{"Go"},
	})
	assert.Equal(t, "google", r.ID())
	assert.Equal(t, "Marquee", r.Get(ColCategory))
	assert.Equal(t, "Bangalore, Hyderabad", r.Get(ColOfficeLocations))
	assert.Empty(t, r.UnknownColumns())

	_, present := r[ColShortName]
	assert.False(t, present)

	r = RowFromCompany(Company{ID: "acme", Category: CategoryUncategorized, SourceCategory: "Product"})
	assert.Equal(t, "Product", r.Get(ColCategory))
}

func TestRowFromCompany_CommaInsideListItem(t *testing.T) {
	r := RowFromCompany(Company{ID: "x", Locations: []string{"Austin, TX", "Pune"}})
	assert.Equal(t, "Austin  TX, Pune", r.Get(ColOfficeLocations))
}

func TestColumns(t *testing.T) {
	assert.Equal(t, ColCompanyID, Columns[0])
	assert.Len(t, Columns, 164)
	assert.True(t, IsColumn(ColTechStack))
	assert.False(t, IsColumn("nope"))
}
