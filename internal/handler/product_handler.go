package handler

import (
	"net/http"
	"strconv"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /products のbody
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"required"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// PATCH /products/:id のbody。全部任意。
type UpdateProductRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Description nullableString `json:"description"` // nullで消せる
	Slug        *string        `json:"slug"`
	Stock       *int           `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string       `json:"sizes"`
	Gender      *string        `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string       `json:"tags"`
	Images      []string       `json:"images"`
}

// /products のCRUD
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// writeは書き込み系ルートにだけ付けるmiddleware
func (h *ProductHandler) RegisterRoutes(g *echo.Group, write ...echo.MiddlewareFunc) {
	g.POST("/products", h.create, write...)
	g.GET("/products", h.list)
	g.GET("/products/:term", h.detail)
	g.PATCH("/products/:id", h.update, write...)
	g.DELETE("/products/:id", h.remove, write...)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	var in usecase.ListProductsInput

	// limit（default 10）
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		in.Limit = &l
	}

	// offset（default 0）
	if v := c.QueryParam("offset"); v != "" {
		o, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		}
		in.Offset = &o
	}

	out, err := h.uc.FindAll(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// termはUUID / slug / title のどれか
func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.uc.FindOnePlain(c.Request().Context(), c.Param("term"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	id := c.Param("id")
	if !usecase.IsUUID(id) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed (uuid is expected)"})
	}

	var req UpdateProductRequest
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProductInput{
		Title:            req.Title,
		Price:            req.Price,
		Description:      req.Description.value,
		ClearDescription: req.Description.isNull(),
		Slug:             req.Slug,
		Stock:            req.Stock,
		Sizes:            req.Sizes,
		Gender:           req.Gender,
		Tags:             req.Tags,
		Images:           req.Images,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 成功時は200で空body
func (h *ProductHandler) remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
