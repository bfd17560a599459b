package ports

import (
	"context"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}

type OrderService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	OrderHistory(ctx context.Context, customerID string) ([]domain.Order, error)
	// UpdateOrderStatus applies one transition of the order state machine.
	UpdateOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus) error
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}
