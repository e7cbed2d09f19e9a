package usecase

import (
	"context"
	"fmt"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/domain/skillmatrix"
	"placement-portal/internal/pkg/apperr"
)

type MatrixColumn struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// MatrixResult is the comparison grid. Total counts rows before the skill
// filter was applied.
type MatrixResult struct {
	Columns []MatrixColumn    `json:"columns"`
	Rows    []skillmatrix.Row `json:"rows"`
	Total   int               `json:"total"`
	Query   string            `json:"query"`
	Missing []string          `json:"missing"`
}

type SkillMatrixUsecase interface {
	Compare(ctx context.Context, ids []string, query string) (MatrixResult, error)
}

// companyLoader is the slice of the catalog the matrix needs.
type companyLoader interface {
	CompareCompanies(ctx context.Context, ids []string) ([]company.Company, error)
}

type SkillMatrix struct {
	companies companyLoader
}

func NewSkillMatrixUsecase(companies companyLoader) *SkillMatrix {
	return &SkillMatrix{companies: companies}
}

// Compare builds the skill grid for up to skillmatrix.MaxSelection companies.
// Unknown ids are reported in Missing and left out of the columns.
func (u *SkillMatrix) Compare(ctx context.Context, ids []string, query string) (MatrixResult, error) {
	ids = NormalizeIDs(ids)
	if len(ids) == 0 {
		return MatrixResult{}, apperr.InvalidInput("select at least one company", nil)
	}
	if len(ids) > skillmatrix.MaxSelection {
		return MatrixResult{}, apperr.InvalidInput(fmt.Sprintf("select at most %d companies", skillmatrix.MaxSelection), nil)
	}

	selection, err := u.companies.CompareCompanies(ctx, ids)
	if err != nil {
		return MatrixResult{}, err
	}

	found := make(map[string]struct{}, len(selection))
	cols := make([]MatrixColumn, 0, len(selection))
	for _, c := range selection {
		found[c.ID] = struct{}{}
		cols = append(cols, MatrixColumn{CompanyID: c.ID, CompanyName: c.Name})
	}
	missing := make([]string, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	rows := skillmatrix.Build(selection)
	return MatrixResult{
		Columns: cols,
		Rows:    skillmatrix.Filter(rows, query),
		Total:   len(rows),
		Query:   query,
		Missing: missing,
	}, nil
}
