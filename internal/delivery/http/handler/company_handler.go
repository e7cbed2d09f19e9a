package handler

import (
	"placement-portal/internal/delivery/http/dto"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CatalogUsecase
}

func NewCompanyHandler(uc usecase.CatalogUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterRoutes mounts the catalog under r. The /:id route goes last so
// the fixed paths win.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	companies := r.Group("/companies")
	companies.Get("", h.ListCompanies)
	companies.Get("/search", h.SearchCompanies)
	companies.Get("/compare", h.CompareCompanies)
	companies.Get("/stats", h.Stats)
	companies.Get("/overview", h.Overview)
	companies.Get("/with-skills", h.CompaniesWithSkills)
	companies.Get("/:id", h.GetCompany)

	r.Get("/categories", h.Categories)
}

func (h *CompanyHandler) ListCompanies(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return err
	}
	asc, err := parseQueryBool(c, "ascending", true)
	if err != nil {
		return err
	}

	params := usecase.ListParams{
		Query:               c.Query("q"),
		Category:            c.Query("category"),
		ProfitabilityStatus: c.Query("profitability_status"),
		EmployeeSize:        c.Query("employee_size"),
		RemoteWorkPolicy:    c.Query("remote_work_policy"),
		Limit:               limit,
		Offset:              offset,
		OrderBy:             c.Query("order_by"),
		Ascending:           asc,
	}

	items, err := h.uc.ListCompanies(c.Context(), params)
	if err != nil {
		return err
	}
	if params.Limit == 0 {
		params.Limit = usecase.DefaultPageLimit
	}
	return response.List(c, dto.NewCompanyCards(items), response.Meta{
		Count:  len(items),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

func (h *CompanyHandler) GetCompany(c fiber.Ctx) error {
	item, err := h.uc.GetCompany(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyDetailResponse(item))
}

func (h *CompanyHandler) SearchCompanies(c fiber.Ctx) error {
	items, err := h.uc.SearchCompanies(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return response.List(c, dto.NewCompanyCards(items), response.Meta{Count: len(items)})
}

func (h *CompanyHandler) CompareCompanies(c fiber.Ctx) error {
	items, err := h.uc.CompareCompanies(c.Context(), parseListQuery(c.Query("ids")))
	if err != nil {
		return err
	}
	out := make([]dto.CompanyDetailResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewCompanyDetailResponse(item))
	}
	return response.List(c, out, response.Meta{Count: len(out)})
}

func (h *CompanyHandler) CompaniesWithSkills(c fiber.Ctx) error {
	items, err := h.uc.CompaniesWithSkills(c.Context())
	if err != nil {
		return err
	}
	return response.List(c, dto.NewCompanyCards(items), response.Meta{Count: len(items)})
}

func (h *CompanyHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func (h *CompanyHandler) Overview(c fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CompanyHandler) Categories(c fiber.Ctx) error {
	cats, err := h.uc.Categories(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cats)
}
