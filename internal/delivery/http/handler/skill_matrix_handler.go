package handler

import (
	"placement-portal/internal/domain/skillmatrix"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillMatrixHandler struct {
	uc usecase.SkillMatrixUsecase
}

func NewSkillMatrixHandler(uc usecase.SkillMatrixUsecase) *SkillMatrixHandler {
	return &SkillMatrixHandler{uc: uc}
}

func (h *SkillMatrixHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/matrix", h.Matrix)
	r.Get("/bloom-levels", h.BloomLevels)
}

// Matrix serves GET /skills/matrix?ids=a,b&q=sys.
func (h *SkillMatrixHandler) Matrix(c fiber.Ctx) error {
	out, err := h.uc.Compare(c.Context(), parseListQuery(c.Query("ids")), c.Query("q"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SkillMatrixHandler) BloomLevels(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, skillmatrix.Legend())
}
