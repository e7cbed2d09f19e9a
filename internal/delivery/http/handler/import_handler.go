package handler

import (
	"placement-portal/internal/delivery/http/dto"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/domain/company"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type ImportHandler struct {
	uc     usecase.ImportUsecase
	logger *zap.Logger
}

func NewImportHandler(uc usecase.ImportUsecase, logger *zap.Logger) *ImportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportHandler{uc: uc, logger: logger}
}

func (h *ImportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/companies/import", h.Import)
}

func (h *ImportHandler) Import(c fiber.Ctx) error {
	var req dto.ImportRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	rows := make([]company.Row, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, company.Row(r))
	}

	out, err := h.uc.ImportRows(c.Context(), rows)
	if err != nil {
		return err
	}
	if _, username, ok := middleware.AdminFromCtx(c); ok {
		h.logger.Info("company import by admin",
			zap.String("admin", username),
			zap.Int("imported", out.Imported),
			zap.Int("skipped", out.Skipped),
		)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
