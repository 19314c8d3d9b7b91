// Package main boardcamp API.
//
// @title           Boardcamp API
// @version         1.0
// @description     Board-game rental service (categories, games, customers, rentals).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Victor-Mannelli/Boardcamp-API/app/echoServer"
	categoryctrl "github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/category"
	customerctrl "github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/customer"
	gamectrl "github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/game"
	rentalctrl "github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/controller/rental"
	"github.com/Victor-Mannelli/Boardcamp-API/app/echoServer/validation"
	"github.com/Victor-Mannelli/Boardcamp-API/config"
	categoryrepo "github.com/Victor-Mannelli/Boardcamp-API/repository/category"
	customerrepo "github.com/Victor-Mannelli/Boardcamp-API/repository/customer"
	gamerepo "github.com/Victor-Mannelli/Boardcamp-API/repository/game"
	rentalrepo "github.com/Victor-Mannelli/Boardcamp-API/repository/rental"
	categorysvc "github.com/Victor-Mannelli/Boardcamp-API/service/category"
	customersvc "github.com/Victor-Mannelli/Boardcamp-API/service/customer"
	gamesvc "github.com/Victor-Mannelli/Boardcamp-API/service/game"
	rentalsvc "github.com/Victor-Mannelli/Boardcamp-API/service/rental"
	"github.com/Victor-Mannelli/Boardcamp-API/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB pool
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	catr := categoryrepo.New(db)
	gr := gamerepo.New(db)
	cur := customerrepo.New(db)
	rr := rentalrepo.New(db)

	// services
	cats := categorysvc.New(catr)
	gs := gamesvc.New(gr)
	cus := customersvc.New(cur)
	rs := rentalsvc.New(db, rr)

	// controllers
	v := validator.New()
	categoryC := &categoryctrl.Controller{Svc: cats, V: v, Log: log}
	gameC := &gamectrl.Controller{Svc: gs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cus, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Category: categoryC,
		Game:     gameC,
		Customer: customerC,
		Rental:   rentalC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
