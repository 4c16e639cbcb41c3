package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/middleware"
	"abc-retail-backend/internal/service"
)

type CartHandler struct {
	cartService  service.CartService
	orderService service.OrderService
}

func NewCartHandler(cartService service.CartService, orderService service.OrderService) *CartHandler {
	return &CartHandler{cartService: cartService, orderService: orderService}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.GetCart(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.cartService.Add(ctx, middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.cartService.UpdateQuantity(ctx, middleware.UserID(c), uint(cartID), req.Quantity); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	if err := h.cartService.Remove(ctx, middleware.UserID(c), uint(cartID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx, middleware.UserID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	created, err := h.orderService.Checkout(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.CheckoutResponse{OrdersCreated: created})
}

func (h *CartHandler) MyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.History(ctx, middleware.UserID(c), middleware.Username(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}
