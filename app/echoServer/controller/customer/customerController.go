package customer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	customersvc "github.com/Victor-Mannelli/Boardcamp-API/service/customer"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /customers
func (h *Controller) Create(c echo.Context) error {
	var req CustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	birthday, _ := time.Parse("2006-01-02", req.Birthday)

	cu := &model.Customer{
		Name:       req.Name,
		Phone:      req.Phone,
		NationalID: req.CPF,
		Birthday:   birthday,
	}
	if err := h.Svc.Create(c.Request().Context(), cu); err != nil {
		switch {
		case errors.Is(err, customersvc.ErrNationalIDTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "cpf already registered"})
		case errors.Is(err, customersvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("customer create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, cu)
}

// GET /customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	cu, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, customersvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("customer detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cu)
}

// PUT /customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req CustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	birthday, _ := time.Parse("2006-01-02", req.Birthday)

	cu := &model.Customer{
		ID:         id,
		Name:       req.Name,
		Phone:      req.Phone,
		NationalID: req.CPF,
		Birthday:   birthday,
	}
	if err := h.Svc.Update(c.Request().Context(), cu); err != nil {
		switch {
		case errors.Is(err, customersvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case errors.Is(err, customersvc.ErrNationalIDTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "cpf already registered"})
		case errors.Is(err, customersvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("customer update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, cu)
}

// GET /customers?cpf=
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
