package handler

import (
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	OK bool `json:"ok"`
}

type HealthHandler struct {
	uc *usecase.ProductUsecase
}

func NewHealthHandler(uc *usecase.ProductUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.health)
}

// DBにpingが通らなければ503
func (h *HealthHandler) health(c echo.Context) error {
	if err := h.uc.Health(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable"})
	}
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}
