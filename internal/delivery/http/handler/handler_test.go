package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/domain/admin"
	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/usecase"
	ucauth "placement-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Count  int `json:"count"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"meta"`
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	register(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type fakeCatalog struct {
	companies  []company.Company
	err        error
	lastParams usecase.ListParams
	lastIDs    []string
}

func (f *fakeCatalog) ListCompanies(_ context.Context, p usecase.ListParams) ([]company.Company, error) {
	f.lastParams = p
	return f.companies, f.err
}

func (f *fakeCatalog) GetCompany(_ context.Context, id string) (company.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, apperr.NotFound("company not found", nil)
}

func (f *fakeCatalog) SearchCompanies(context.Context, string) ([]company.Company, error) {
	return f.companies, f.err
}

func (f *fakeCatalog) CompareCompanies(_ context.Context, ids []string) ([]company.Company, error) {
	f.lastIDs = ids
	return f.companies, f.err
}

func (f *fakeCatalog) CompaniesWithSkills(context.Context) ([]company.Company, error) {
	return f.companies, f.err
}

func (f *fakeCatalog) Stats(context.Context) (company.Stats, error) {
	return company.Stats{TotalCount: len(f.companies)}, f.err
}

func (f *fakeCatalog) Categories(context.Context) ([]string, error) {
	return []string{"Core", "Marquee"}, f.err
}

func (f *fakeCatalog) Overview(ctx context.Context) (usecase.Overview, error) {
	return usecase.Overview{}, f.err
}

func (f *fakeCatalog) Ping(context.Context) error { return f.err }

func sample() []company.Company {
	return []company.Company{
		{ID: "google", Name: "Google", Category: company.CategoryMarquee, CTCValue: 30, FixedComponent: 20, VariableComponent: 5, Bonus: 5},
		{ID: "tcs", Name: "TCS", Category: company.CategoryCore},
	}
}

func TestCompanyHandler_List(t *testing.T) {
	uc := &fakeCatalog{companies: sample()}
	app := newTestApp(NewCompanyHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/companies?q=goo&category=Core&limit=5&offset=2&order_by=company_name&ascending=true", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Count)
	assert.Equal(t, 5, env.Meta.Limit)
	assert.Equal(t, 2, env.Meta.Offset)
	assert.Equal(t, "goo", uc.lastParams.Query)
	assert.Equal(t, "Core", uc.lastParams.Category)
	assert.Equal(t, "company_name", uc.lastParams.OrderBy)
	assert.True(t, uc.lastParams.Ascending)
}

func TestCompanyHandler_ListOrderDefaultsToAscending(t *testing.T) {
	uc := &fakeCatalog{companies: sample()}
	app := newTestApp(NewCompanyHandler(uc).RegisterRoutes)

	status, _ := do(t, app, http.MethodGet, "/api/v1/companies?order_by=company_name", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, uc.lastParams.Ascending)

	status, _ = do(t, app, http.MethodGet, "/api/v1/companies?order_by=company_name&ascending=false", "")
	require.Equal(t, http.StatusOK, status)
	assert.False(t, uc.lastParams.Ascending)
}

func TestCompanyHandler_ListRejectsBadQuery(t *testing.T) {
	app := newTestApp(NewCompanyHandler(&fakeCatalog{}).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/companies?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "limit must be an integer", env.Message)

	status, _ = do(t, app, http.MethodGet, "/api/v1/companies?ascending=maybe", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCompanyHandler_DetailAndNotFound(t *testing.T) {
	app := newTestApp(NewCompanyHandler(&fakeCatalog{companies: sample()}).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/companies/google", "")
	require.Equal(t, http.StatusOK, status)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Google", detail["name"])
	assert.Equal(t, true, detail["compensation_consistent"])

	status, env = do(t, app, http.MethodGet, "/api/v1/companies/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "company not found", env.Message)
}

func TestCompanyHandler_FixedPathsBeatID(t *testing.T) {
	uc := &fakeCatalog{companies: sample()}
	app := newTestApp(NewCompanyHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/companies/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `2`, string(mustField(t, env.Data, "total_count")))

	status, _ = do(t, app, http.MethodGet, "/api/v1/companies/compare?ids=google,%20tcs,,", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"google", "tcs"}, uc.lastIDs)

	status, env = do(t, app, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Core","Marquee"]`, string(env.Data))
}

func TestCompanyHandler_UnavailableIsMasked(t *testing.T) {
	uc := &fakeCatalog{err: apperr.Unavailable("list companies: dial tcp refused", errors.New("dial"))}
	app := newTestApp(NewCompanyHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/companies", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "service unavailable", env.Message)
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return m[key]
}

type fakeMatrix struct {
	ids   []string
	query string
}

func (f *fakeMatrix) Compare(_ context.Context, ids []string, query string) (usecase.MatrixResult, error) {
	f.ids, f.query = ids, query
	if len(ids) == 0 {
		return usecase.MatrixResult{}, apperr.InvalidInput("select at least one company", nil)
	}
	return usecase.MatrixResult{Total: 3, Query: query}, nil
}

func TestSkillMatrixHandler(t *testing.T) {
	uc := &fakeMatrix{}
	app := newTestApp(func(r fiber.Router) { NewSkillMatrixHandler(uc).RegisterRoutes(r.Group("/skills")) })

	status, _ := do(t, app, http.MethodGet, "/api/v1/skills/matrix?ids=google,tcs&q=sys", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"google", "tcs"}, uc.ids)
	assert.Equal(t, "sys", uc.query)

	status, env := do(t, app, http.MethodGet, "/api/v1/skills/matrix", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "select at least one company", env.Message)

	status, env = do(t, app, http.MethodGet, "/api/v1/skills/bloom-levels", "")
	require.Equal(t, http.StatusOK, status)
	var legend []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &legend))
	assert.Len(t, legend, 5)
}

func TestHealthHandler(t *testing.T) {
	up := newTestApp(NewHealthHandler(&fakeCatalog{}, "fixture").RegisterRoutes)
	status, env := do(t, up, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"up"`, string(mustField(t, env.Data, "status")))

	down := newTestApp(NewHealthHandler(&fakeCatalog{err: errors.New("down")}, "postgres").RegisterRoutes)
	status, env = do(t, down, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.JSONEq(t, `"down"`, string(mustField(t, env.Data, "status")))
}

type fakeAuth struct {
	refreshToken string
}

func (f *fakeAuth) Login(_ context.Context, in ucauth.LoginInput) (admin.Admin, usecase.TokenPair, error) {
	if in.Password != "correct-horse" {
		return admin.Admin{}, usecase.TokenPair{}, apperr.Unauthorized("invalid credentials", nil)
	}
	return admin.Admin{ID: uuid.New(), Username: in.Username}, usecase.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
}

func (f *fakeAuth) Refresh(_ context.Context, token string) (usecase.TokenPair, error) {
	f.refreshToken = token
	return usecase.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
}

func TestAuthHandler_Login(t *testing.T) {
	app := newTestApp(func(r fiber.Router) { NewAuthHandler(&fakeAuth{}).RegisterRoutes(r.Group("/auth")) })

	status, env := do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"a"`, string(mustField(t, env.Data, "access_token")))

	status, _ = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"ad"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)
}

func TestAuthHandler_RefreshFromBodyOrHeader(t *testing.T) {
	uc := &fakeAuth{}
	app := newTestApp(func(r fiber.Router) { NewAuthHandler(uc).RegisterRoutes(r.Group("/auth")) })

	status, _ := do(t, app, http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"body-token"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "body-token", uc.refreshToken)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "header-token", uc.refreshToken)

	status, _ = do(t, app, http.MethodPost, "/api/v1/auth/refresh", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

type fakeImport struct {
	rows []company.Row
}

func (f *fakeImport) Validate(rows []company.Row) ([]company.Row, []usecase.RowError) {
	return rows, nil
}

func (f *fakeImport) ImportRows(_ context.Context, rows []company.Row) (usecase.ImportResult, error) {
	f.rows = rows
	return usecase.ImportResult{Received: len(rows), Imported: len(rows), Errors: []usecase.RowError{}}, nil
}

func TestImportHandler(t *testing.T) {
	uc := &fakeImport{}
	app := newTestApp(func(r fiber.Router) { NewImportHandler(uc, nil).RegisterRoutes(r.Group("/admin")) })

	status, env := do(t, app, http.MethodPost, "/api/v1/admin/companies/import", `{"rows":[{"company_id":"acme","company_name":"Acme"}]}`)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, uc.rows, 1)
	assert.Equal(t, "acme", uc.rows[0].ID())
	assert.JSONEq(t, `1`, string(mustField(t, env.Data, "imported")))

	status, _ = do(t, app, http.MethodPost, "/api/v1/admin/companies/import", `{"rows":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
