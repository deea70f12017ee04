package server

import (
	"github.com/gastonlopezt/TUP-25-p3/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler, inventoryH *handler.InventoryHandler, cartH *handler.CartHandler) {
	productH.RegisterRoutes(e)
	inventoryH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
}
