package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/category"
	"github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/customer"
	"github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/game"
	"github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/rental"
)

type C struct {
	Category *category.Controller
	Game     *game.Controller
	Customer *customer.Controller
	Rental   *rental.Controller
}

func Register(e *echo.Echo, c C) {
	e.POST("/categories", c.Category.Create)
	e.GET("/categories", c.Category.List)

	e.POST("/games", c.Game.Create)
	e.GET("/games", c.Game.List)

	e.POST("/customers", c.Customer.Create)
	e.GET("/customers", c.Customer.List)
	e.GET("/customers/:id", c.Customer.Detail)
	e.PUT("/customers/:id", c.Customer.Update)

	e.POST("/rentals", c.Rental.Create)
	e.GET("/rentals", c.Rental.List)
	e.POST("/rentals/:id/return", c.Rental.Return)
	e.DELETE("/rentals/:id", c.Rental.Delete)
}
