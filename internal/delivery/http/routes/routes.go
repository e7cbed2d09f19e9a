package routes

import (
	"placement-portal/internal/delivery/http/handler"
	v1 "placement-portal/internal/delivery/http/routes/v1"
	"placement-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
	v1     v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, handlers v1.Handlers) *Registry {
	return &Registry{health: health, ws: wsHandler, v1: handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	app.Get("/ws/catalog", r.ws.HandleCatalogWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}
