package game

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	gamesvc "github.com/Victor-Mannelli/Boardcamp-API/service/game"
)

type Controller struct {
	Svc gamesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /games
func (h *Controller) Create(c echo.Context) error {
	var req CreateGameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	g := &model.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	}
	if err := h.Svc.Create(c.Request().Context(), g); err != nil {
		switch {
		case errors.Is(err, gamesvc.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "category not found"})
		case errors.Is(err, gamesvc.ErrGameTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "game already exists"})
		case errors.Is(err, gamesvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("game create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, g)
}

// GET /games?name=
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		h.Log.Error("game list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
