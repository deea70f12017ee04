package server

import (
	"github.com/gastonlopezt/TUP-25-p3/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Start はルートを登録してHTTPサーバを起動する。
func Start(addr string, productH *handler.ProductHandler, inventoryH *handler.InventoryHandler, cartH *handler.CartHandler) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, productH, inventoryH, cartH)
	return e.Start(addr)
}
