package handler

import (
	"context"
	"time"

	"placement-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	source Pinger
	mode   string
}

func NewHealthHandler(source Pinger, mode string) *HealthHandler {
	return &HealthHandler{source: source, mode: mode}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]any{"source": h.mode}
	if h.source != nil {
		if err := h.source.Ping(ctx); err != nil {
			data["status"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
		}
	}
	data["status"] = "up"
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
