package category

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	catsvc "github.com/Victor-Mannelli/Boardcamp-API/service/category"
)

type Controller struct {
	Svc catsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /categories
func (h *Controller) Create(c echo.Context) error {
	var req CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	cat, err := h.Svc.Create(c.Request().Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, catsvc.ErrCategoryTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "category already exists"})
		case errors.Is(err, catsvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("category create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, cat)
}

// GET /categories
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("category list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
