package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// OrderService serves the admin order/payment screens and the customer's
// order history.
type OrderService struct {
	orders   ports.OrderRepository
	payments ports.PaymentRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, payments ports.PaymentRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, payments: payments, logger: logger}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) OrderHistory(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}
	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return err
	}
	s.logger.Info().
		Str("order_id", orderID).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Msg("order status updated")
	return nil
}

func (s *OrderService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}
