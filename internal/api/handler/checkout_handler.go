package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/api/middleware"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// CheckoutHandler drives the customer's checkout flow: start the
// settlement, poll its state, or cancel it before the timer fires.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type startCheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=credit_card debit_card paypal cash"`
}

// Start begins the settlement. The response is 202: the order is placed
// only after the processing delay elapses, and the cart stays locked until
// then.
func (h *CheckoutHandler) Start(c echo.Context) error {
	var req startCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	identity := middleware.CtxIdentity(c)
	status, err := h.checkout.Start(c.Request().Context(), ports.StartCheckoutInput{
		CustomerID:    identity.ID,
		CustomerName:  identity.Name,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, status)
}

func (h *CheckoutHandler) Status(c echo.Context) error {
	identity := middleware.CtxIdentity(c)
	return c.JSON(http.StatusOK, h.checkout.Status(c.Request().Context(), identity.ID))
}

func (h *CheckoutHandler) Cancel(c echo.Context) error {
	identity := middleware.CtxIdentity(c)
	if err := h.checkout.Cancel(c.Request().Context(), identity.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
