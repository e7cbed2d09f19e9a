package v1

import (
	"placement-portal/internal/delivery/http/handler"
	"placement-portal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. Auth, Import and AuthMw are
// nil when the catalog is served from fixtures.
type Handlers struct {
	Company     *handler.CompanyHandler
	SkillMatrix *handler.SkillMatrixHandler
	Auth        *handler.AuthHandler
	Import      *handler.ImportHandler
	AuthMw      *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Company != nil {
		h.Company.RegisterRoutes(r)
	}
	if h.SkillMatrix != nil {
		h.SkillMatrix.RegisterRoutes(r.Group("/skills"))
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Import != nil && h.AuthMw != nil {
		admin := r.Group("/admin", h.AuthMw.Middleware())
		h.Import.RegisterRoutes(admin)
	}
}
