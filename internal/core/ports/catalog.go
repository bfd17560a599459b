package ports

import (
	"context"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type RoleRepository interface {
	List(ctx context.Context) ([]domain.RoleRecord, error)
	Create(ctx context.Context, r *domain.RoleRecord) (*domain.RoleRecord, error)
	Update(ctx context.Context, r *domain.RoleRecord) error
	Delete(ctx context.Context, id string) error
}

// SaveCategoryInput mirrors the admin console's save contract: Flag selects
// the operation, 'I' insert, 'U' update, 'D' delete.
type SaveCategoryInput struct {
	Flag        string
	ID          string
	Name        string
	Description string
	ParentID    string
	IsActive    bool
}

// SaveResult is the {status, message} envelope the admin console expects:
// status 1 on success, 0 on failure. A failed save leaves prior state
// untouched.
type SaveResult struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type CatalogService interface {
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SaveProduct(ctx context.Context, flag string, p domain.Product) (*SaveResult, error)

	GetCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategory(ctx context.Context, input SaveCategoryInput) (*SaveResult, error)

	ListRoles(ctx context.Context) ([]domain.RoleRecord, error)
	SaveRole(ctx context.Context, flag string, r domain.RoleRecord) (*SaveResult, error)
}
