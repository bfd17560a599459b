package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

const (
	FlagInsert = "I"
	FlagUpdate = "U"
	FlagDelete = "D"
)

// CatalogService serves the admin console's product, category, and role
// screens plus the customer-facing product browse. Save operations follow
// the console's flag protocol and report {status, message} instead of
// raising: a failed save leaves prior state untouched and the caller
// re-shows the edit form.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	roles      ports.RoleRepository
	logger     zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, roles ports.RoleRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, categories: categories, roles: roles, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return products, nil
	}
	active := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Status == domain.StatusActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) SaveProduct(ctx context.Context, flag string, p domain.Product) (*ports.SaveResult, error) {
	switch flag {
	case FlagInsert:
		p.ID = uuid.NewString()
		if p.Status == "" {
			p.Status = domain.StatusActive
		}
		if _, err := s.products.Create(ctx, &p); err != nil {
			return s.failure("failed to create product", err), nil
		}
		return s.success("product created"), nil
	case FlagUpdate:
		if err := s.products.Update(ctx, &p); err != nil {
			return s.failure("failed to update product", err), nil
		}
		return s.success("product updated"), nil
	case FlagDelete:
		if err := s.products.Delete(ctx, p.ID); err != nil {
			return s.failure("failed to delete product", err), nil
		}
		return s.success("product deleted"), nil
	default:
		return &ports.SaveResult{Status: 0, Message: "unknown flag: " + flag}, nil
	}
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) SaveCategory(ctx context.Context, input ports.SaveCategoryInput) (*ports.SaveResult, error) {
	category := domain.Category{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		IsActive:    input.IsActive,
	}

	switch input.Flag {
	case FlagInsert:
		category.ID = uuid.NewString()
		if _, err := s.categories.Create(ctx, &category); err != nil {
			return s.failure("failed to save category", err), nil
		}
		return s.success("category saved successfully"), nil
	case FlagUpdate:
		if err := s.categories.Update(ctx, &category); err != nil {
			return s.failure("failed to update category", err), nil
		}
		return s.success("category updated successfully"), nil
	case FlagDelete:
		if err := s.categories.Delete(ctx, input.ID); err != nil {
			return s.failure("failed to delete category", err), nil
		}
		return s.success("category deleted successfully"), nil
	default:
		return &ports.SaveResult{Status: 0, Message: "unknown flag: " + input.Flag}, nil
	}
}

func (s *CatalogService) ListRoles(ctx context.Context) ([]domain.RoleRecord, error) {
	return s.roles.List(ctx)
}

func (s *CatalogService) SaveRole(ctx context.Context, flag string, r domain.RoleRecord) (*ports.SaveResult, error) {
	switch flag {
	case FlagInsert:
		r.ID = uuid.NewString()
		if r.Status == "" {
			r.Status = domain.StatusActive
		}
		if _, err := s.roles.Create(ctx, &r); err != nil {
			return s.failure("failed to create role", err), nil
		}
		return s.success("role created"), nil
	case FlagUpdate:
		if err := s.roles.Update(ctx, &r); err != nil {
			return s.failure("failed to update role", err), nil
		}
		return s.success("role updated"), nil
	case FlagDelete:
		if err := s.roles.Delete(ctx, r.ID); err != nil {
			return s.failure("failed to delete role", err), nil
		}
		return s.success("role deleted"), nil
	default:
		return &ports.SaveResult{Status: 0, Message: "unknown flag: " + flag}, nil
	}
}

func (s *CatalogService) success(msg string) *ports.SaveResult {
	return &ports.SaveResult{Status: 1, Message: msg}
}

func (s *CatalogService) failure(msg string, err error) *ports.SaveResult {
	s.logger.Error().Err(err).Msg(msg)
	return &ports.SaveResult{Status: 0, Message: msg}
}
