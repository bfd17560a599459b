package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/api/metrics"
	"github.com/ajaykumar8188/lubes-management/internal/api/middleware"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// CartHandler exposes the customer's cart aggregate. Every mutation
// responds with the full updated cart view so the client never works from
// a stale copy.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Get(c echo.Context) error {
	identity := middleware.CtxIdentity(c)
	view, err := h.carts.Get(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	identity := middleware.CtxIdentity(c)
	view, err := h.carts.AddItem(c.Request().Context(), identity.ID, req.ProductID)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, view)
}

// UpdateQuantity sets an absolute quantity; zero or below removes the item.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity := middleware.CtxIdentity(c)
	view, err := h.carts.UpdateQuantity(c.Request().Context(), identity.ID, c.Param("product_id"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	identity := middleware.CtxIdentity(c)
	view, err := h.carts.RemoveItem(c.Request().Context(), identity.ID, c.Param("product_id"))
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) Clear(c echo.Context) error {
	identity := middleware.CtxIdentity(c)
	if err := h.carts.Clear(c.Request().Context(), identity.ID); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}
