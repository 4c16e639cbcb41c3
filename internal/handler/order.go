package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListAll(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil || req.NewStatus == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "new_status is required")
	}

	resp, err := h.orderService.UpdateStatus(ctx, uint(orderID), req.NewStatus)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListLegacy(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListLegacy(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateLegacy(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateLegacyOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.orderService.CreateLegacy(ctx, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateLegacyStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil || req.NewStatus == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "new_status is required")
	}

	resp, err := h.orderService.UpdateLegacyStatus(ctx, c.Param("id"), req.NewStatus)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) DeleteLegacy(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orderService.DeleteLegacy(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
