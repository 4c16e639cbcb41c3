package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/service"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.List(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) ListLegacy(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.ListLegacy(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := h.customerService.Get(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.customerService.Create(ctx, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.customerService.Update(ctx, c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.customerService.Delete(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
