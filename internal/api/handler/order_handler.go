package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/api/middleware"
	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// OrderHandler serves the admin order and payment screens plus the
// customer's order history.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus applies one order state machine transition; an illegal
// transition is a 422.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.orders.UpdateOrderStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// History returns the caller's own orders, newest first.
func (h *OrderHandler) History(c echo.Context) error {
	identity := middleware.CtxIdentity(c)
	orders, err := h.orders.OrderHistory(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListPayments(c echo.Context) error {
	payments, err := h.orders.ListPayments(c.Request().Context())
	if err != nil {
		return err
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return c.JSON(http.StatusOK, payments)
}
