package handler

import (
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GET /seed
type SeedHandler struct {
	uc *usecase.SeedUsecase
}

// DI
func NewSeedHandler(uc *usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

func (h *SeedHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.GET("/seed", h.run, guard...)
}

func (h *SeedHandler) run(c echo.Context) error {
	msg, err := h.uc.RunSeed(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.String(http.StatusOK, msg)
}
