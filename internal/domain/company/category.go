package company

import "strings"

// Category is a placement tier.
type Category string

const (
	CategoryMarquee    Category = "Marquee"
	CategorySuperDream Category = "Super Dream"
	CategoryDream      Category = "Dream"
	CategoryCore       Category = "Core"
	CategoryIT         Category = "IT"
	CategoryStartup    Category = "Startup"

	// CategoryUncategorized is assigned when the source has no category or
	// one outside the placement tiers.
	CategoryUncategorized Category = "Uncategorized"
)

const DefaultCategory = CategoryUncategorized

// CategoryAll is the listing filter value that matches every category.
const CategoryAll = "All"

var tiers = []Category{
	CategoryMarquee,
	CategorySuperDream,
	CategoryDream,
	CategoryCore,
	CategoryIT,
	CategoryStartup,
}

// Tiers returns the placement tiers in display order.
func Tiers() []Category {
	out := make([]Category, len(tiers))
	copy(out, tiers)
	return out
}

// ParseCategory matches raw against the placement tiers, ignoring case and
// surrounding whitespace. The second result is false when raw is not a tier;
// the returned category is then DefaultCategory.
func ParseCategory(raw string) (Category, bool) {
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return DefaultCategory, false
	}
	for _, t := range tiers {
		if strings.EqualFold(raw, string(t)) {
			return t, true
		}
	}
	return DefaultCategory, false
}

// CategoryKey is the value categories are filtered, counted and listed by:
// the tier name when raw is a tier, otherwise raw with its whitespace
// collapsed. Keys compare case-insensitively.
func CategoryKey(raw string) string {
	if c, ok := ParseCategory(raw); ok {
		return string(c)
	}
	return strings.Join(strings.Fields(raw), " ")
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}
