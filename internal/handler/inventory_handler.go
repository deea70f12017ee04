package handler

import (
	"net/http"
	"strconv"

	"github.com/gastonlopezt/TUP-25-p3/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products/{id}/add|remove の在庫調整API
type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	e.PUT("/products/:id/add/:qty", h.add)
	e.PUT("/products/:id/remove/:qty", h.remove)
}

func (h *InventoryHandler) add(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	qty, err := strconv.ParseInt(c.Param("qty"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
	}

	p, err := h.uc.AddStock(c.Request().Context(), id, qty)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *InventoryHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	qty, err := strconv.ParseInt(c.Param("qty"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
	}

	p, err := h.uc.RemoveStock(c.Request().Context(), id, qty)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}
