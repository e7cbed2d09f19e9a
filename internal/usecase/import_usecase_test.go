package usecase

import (
	"context"
	"errors"
	"testing"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	got []company.Row
	err error
}

func (m *mockWriter) UpsertCompanies(_ context.Context, rows []company.Row) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.got = rows
	return len(rows), nil
}

type mockNotifier struct {
	ids   []string
	calls int
}

func (m *mockNotifier) CatalogUpdated(_ context.Context, ids []string) {
	m.calls++
	m.ids = ids
}

func TestImport_ValidatesAndStores(t *testing.T) {
	w := &mockWriter{}
	cache := newMockCache()
	n := &mockNotifier{}
	ctx := context.Background()
	require.NoError(t, cache.SetJSON(ctx, "companies:list:abc", []string{"x"}, 0))
	require.NoError(t, cache.SetJSON(ctx, "other:key", 1, 0))

	uc := NewImportUsecase(w, cache, n, nil)
	res, err := uc.ImportRows(ctx, []company.Row{
		{company.ColCompanyID: "a", company.ColCompanyName: "A v1"},
		{company.ColCompanyName: "no id"},
		{company.ColCompanyID: "b", "favourite_colour": "blue"},
		{company.ColCompanyID: "a", company.ColCompanyName: "A v2"},
		{company.ColCompanyID: "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Received)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, RowError{Index: 0, CompanyID: "a", Reason: "superseded by row 3"}, res.Errors[0])
	assert.Equal(t, RowError{Index: 1, Reason: "missing company_id"}, res.Errors[1])
	assert.Equal(t, "unknown columns: favourite_colour", res.Errors[2].Reason)

	require.Len(t, w.got, 2)
	assert.Equal(t, "A v2", w.got[0].Get(company.ColCompanyName))

	assert.Equal(t, 1, n.calls)
	assert.Equal(t, []string{"a", "c"}, n.ids)

	var v []string
	hit, _ := cache.GetJSON(ctx, "companies:list:abc", &v)
	assert.False(t, hit)
	var other int
	hit, _ = cache.GetJSON(ctx, "other:key", &other)
	assert.True(t, hit)
}

func TestImport_RejectedRowDoesNotSupersede(t *testing.T) {
	uc := NewImportUsecase(&mockWriter{}, nil, nil, nil)

	valid, errs := uc.Validate([]company.Row{
		{company.ColCompanyID: "a", company.ColCompanyName: "X"},
		{company.ColCompanyID: "a", "bogus": "x"},
	})
	require.Len(t, valid, 1)
	assert.Equal(t, "X", valid[0].Get(company.ColCompanyName))
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Index)
	assert.Equal(t, "unknown columns: bogus", errs[0].Reason)
}

func TestImport_NothingValidSkipsWrite(t *testing.T) {
	w := &mockWriter{}
	n := &mockNotifier{}
	uc := NewImportUsecase(w, nil, n, nil)

	res, err := uc.ImportRows(context.Background(), []company.Row{{"bogus": "x"}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Nil(t, w.got)
	assert.Zero(t, n.calls)
}

func TestImport_Errors(t *testing.T) {
	uc := NewImportUsecase(&mockWriter{}, nil, nil, nil)
	_, err := uc.ImportRows(context.Background(), nil)
	assert.True(t, apperr.Is(err, apperr.TypeInvalidInput))

	uc = NewImportUsecase(nil, nil, nil, nil)
	_, err = uc.ImportRows(context.Background(), []company.Row{{company.ColCompanyID: "a"}})
	assert.True(t, apperr.Is(err, apperr.TypeUnavailable))

	cause := errors.New("tx aborted")
	n := &mockNotifier{}
	uc = NewImportUsecase(&mockWriter{err: cause}, nil, n, nil)
	_, err = uc.ImportRows(context.Background(), []company.Row{{company.ColCompanyID: "a"}})
	assert.True(t, apperr.Is(err, apperr.TypeUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, n.calls)
}
