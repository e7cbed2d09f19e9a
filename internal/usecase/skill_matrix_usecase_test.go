package usecase

import (
	"context"
	"testing"

	"placement-portal/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillMatrix_Compare(t *testing.T) {
	catalog := NewCatalogUsecase(&mockSource{companies: sampleCompanies()}, nil, nil)
	uc := NewSkillMatrixUsecase(catalog)

	res, err := uc.Compare(context.Background(), []string{"razorpay", "google", "ghost"}, "")
	require.NoError(t, err)

	require.Len(t, res.Columns, 2)
	assert.Equal(t, "razorpay", res.Columns[0].CompanyID)
	assert.Equal(t, "Google", res.Columns[1].CompanyName)
	assert.Equal(t, []string{"ghost"}, res.Missing)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, []string{"APIs", "DSA", "System Design"}, []string{res.Rows[0].SkillName, res.Rows[1].SkillName, res.Rows[2].SkillName})
	assert.Equal(t, 3, res.Total)

	apis := res.Rows[0]
	require.NotNil(t, apis.Cells[0].Skill)
	assert.Nil(t, apis.Cells[1].Skill)
}

func TestSkillMatrix_FilterKeepsTotal(t *testing.T) {
	uc := NewSkillMatrixUsecase(NewCatalogUsecase(&mockSource{companies: sampleCompanies()}, nil, nil))

	res, err := uc.Compare(context.Background(), []string{"google", "razorpay"}, "dsa")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "DSA", res.Rows[0].SkillName)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, "dsa", res.Query)
}

func TestSkillMatrix_SelectionBounds(t *testing.T) {
	uc := NewSkillMatrixUsecase(NewCatalogUsecase(&mockSource{companies: sampleCompanies()}, nil, nil))

	_, err := uc.Compare(context.Background(), []string{" ", ""}, "")
	assert.True(t, apperr.Is(err, apperr.TypeInvalidInput))

	_, err = uc.Compare(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, "")
	assert.True(t, apperr.Is(err, apperr.TypeInvalidInput))

	res, err := uc.Compare(context.Background(), []string{"zeta", "zeta", "zeta", "zeta", "zeta", "zeta"}, "")
	require.NoError(t, err)
	assert.Len(t, res.Columns, 1)
	assert.Empty(t, res.Rows)
	assert.NotNil(t, res.Rows)
}
