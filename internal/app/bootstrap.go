package app

import (
	"fmt"
	"strings"

	"placement-portal/internal/config"
	"placement-portal/internal/delivery/http/handler"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/delivery/http/routes"
	v1 "placement-portal/internal/delivery/http/routes/v1"
	"placement-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	handlers := v1.Handlers{
		Company:     handler.NewCompanyHandler(c.Catalog),
		SkillMatrix: handler.NewSkillMatrixHandler(c.SkillMatrix),
	}
	if c.Auth != nil && c.JWT != nil {
		handlers.Auth = handler.NewAuthHandler(c.Auth)
		handlers.Import = handler.NewImportHandler(c.Import, c.Logger)
		handlers.AuthMw = middleware.NewAuthMiddleware(c.JWT)
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Catalog, c.Config.DataSource),
		ws.NewHandler(c.Hub, c.Logger),
		handlers,
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
