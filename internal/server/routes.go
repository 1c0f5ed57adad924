package server

import (
	"catalog/internal/handler"
	"catalog/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Product *handler.ProductHandler
	Seed    *handler.SeedHandler
	Health  *handler.HealthHandler
}

// 全ルートは /api 配下。JWT_SECRETがあれば書き込み系とseedはADMINのみ。
func RegisterRoutes(e *echo.Echo, jwtSecret string, h Handlers) {
	api := e.Group("/api")
	admin := middleware.AdminOnly(jwtSecret)

	h.Product.RegisterRoutes(api, admin...)
	h.Seed.RegisterRoutes(api, admin...)
	h.Health.RegisterRoutes(api)
}
