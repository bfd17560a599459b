package ports

import (
	"context"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

// CartView is the read model returned by every cart mutation, so callers
// always observe the state produced by their own write.
type CartView struct {
	Items     []domain.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
}

type CartService interface {
	Get(ctx context.Context, customerID string) (*CartView, error)
	AddItem(ctx context.Context, customerID, productID string) (*CartView, error)
	UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, customerID, productID string) (*CartView, error)
	Clear(ctx context.Context, customerID string) error
}

// CartRepository is the write-through snapshot behind the in-memory carts,
// keyed by customer id. A missing snapshot is an empty cart, not an error.
type CartRepository interface {
	Load(ctx context.Context, customerID string) ([]domain.LineItem, error)
	Save(ctx context.Context, customerID string, items []domain.LineItem) error
	Delete(ctx context.Context, customerID string) error
}
