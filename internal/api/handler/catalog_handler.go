package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// CatalogHandler serves the admin catalog screens and the customer product
// browse. The category endpoints keep the admin console's original wire
// contract: a bare array on read, a flag-dispatched save returning
// {status, message}.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// --- Categories ---

type saveCategoryRequest struct {
	Flag        string `json:"flag"        validate:"required,oneof=I U D"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id"`
	IsActive    bool   `json:"is_active"`
}

// GetCategories handles GET /api/admin/getcategories.
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalog.GetCategories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}

// SaveCategory handles POST /api/admin/Savecategories. Failures surface in
// the envelope (status 0) rather than as HTTP errors, matching the console.
func (h *CatalogHandler) SaveCategory(c echo.Context) error {
	var req saveCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, ports.SaveResult{Status: 0, Message: err.Error()})
	}

	result, err := h.catalog.SaveCategory(c.Request().Context(), ports.SaveCategoryInput{
		Flag:        req.Flag,
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// --- Products ---

type saveProductRequest struct {
	Flag        string  `json:"flag"        validate:"required,oneof=I U D"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"omitempty,gt=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Status      string  `json:"status"      validate:"omitempty,oneof=active inactive"`
	Stock       int     `json:"stock"       validate:"omitempty,min=0"`
}

// ListProducts serves both personas: admins see the full catalog,
// customers only active products.
func (h *CatalogHandler) ListProducts(activeOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := h.catalog.ListProducts(c.Request().Context(), activeOnly)
		if err != nil {
			return err
		}
		if products == nil {
			products = []domain.Product{}
		}
		return c.JSON(http.StatusOK, products)
	}
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) SaveProduct(c echo.Context) error {
	var req saveProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, ports.SaveResult{Status: 0, Message: err.Error()})
	}

	result, err := h.catalog.SaveProduct(c.Request().Context(), req.Flag, domain.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Status:      req.Status,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// --- Roles ---

type saveRoleRequest struct {
	Flag        string `json:"flag"        validate:"required,oneof=I U D"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=active inactive"`
}

func (h *CatalogHandler) ListRoles(c echo.Context) error {
	roles, err := h.catalog.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []domain.RoleRecord{}
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *CatalogHandler) SaveRole(c echo.Context) error {
	var req saveRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, ports.SaveResult{Status: 0, Message: err.Error()})
	}

	result, err := h.catalog.SaveRole(c.Request().Context(), req.Flag, domain.RoleRecord{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
