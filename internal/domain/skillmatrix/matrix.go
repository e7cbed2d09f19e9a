// Package skillmatrix builds the company × skill comparison grid.
//
// Rows are the distinct skill names of the selection, sorted ascending by
// byte-wise string comparison. Columns follow the selection order exactly.
// Names are compared case-sensitively, so "Go" and "go" are separate rows.
package skillmatrix

import (
	"slices"
	"strings"

	"placement-portal/internal/domain/company"
)

// MaxSelection is the largest selection callers should pass to Build. Build
// itself accepts any size.
const MaxSelection = 5

// Cell is one company's entry for a skill row. Skill is nil when the company
// does not list that skill.
type Cell struct {
	CompanyID   string         `json:"company_id"`
	CompanyName string         `json:"company_name"`
	Skill       *company.Skill `json:"skill"`
}

// Row holds one skill and a cell per selected company.
type Row struct {
	SkillName string `json:"skill_name"`
	Cells     []Cell `json:"cells"`
}

// Build returns the grid for selection. The input is not modified and every
// cell owns its own copy of the skill detail.
func Build(selection []company.Company) []Row {
	seen := map[string]struct{}{}
	names := make([]string, 0)
	for _, c := range selection {
		for _, s := range c.Skills {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			names = append(names, s.Name)
		}
	}
	slices.Sort(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		cells := make([]Cell, 0, len(selection))
		for _, c := range selection {
			cell := Cell{CompanyID: c.ID, CompanyName: c.Name}
			if s, ok := c.SkillByName(name); ok {
				cp := s.Clone()
				cell.Skill = &cp
			}
			cells = append(cells, cell)
		}
		rows = append(rows, Row{SkillName: name, Cells: cells})
	}
	return rows
}

// Filter keeps the rows whose skill name contains query, ignoring case. An
// empty query keeps every row. Row order is preserved.
func Filter(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.SkillName), q) {
			out = append(out, r)
		}
	}
	return out
}

// LegendEntry describes one bloom level for tooltips.
type LegendEntry struct {
	Code  company.BloomLevel `json:"code"`
	Label string             `json:"label"`
}

func Legend() []LegendEntry {
	levels := company.BloomLevels()
	out := make([]LegendEntry, 0, len(levels))
	for _, l := range levels {
		out = append(out, LegendEntry{Code: l, Label: l.Label()})
	}
	return out
}
