package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ajaykumar8188/lubes-management/internal/api/metrics"
	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

const (
	// FlatShippingFee and TaxRate are the storefront's pricing policy,
	// layered on top of the cart subtotal at checkout time.
	FlatShippingFee = 10.00
	TaxRate         = 0.10

	defaultSettlementDelay = 2 * time.Second
)

// BuildQuote composes the checkout display total from a cart subtotal.
func BuildQuote(subtotal float64) ports.Quote {
	tax := subtotal * TaxRate
	return ports.Quote{
		Subtotal:   subtotal,
		Shipping:   FlatShippingFee,
		Tax:        tax,
		GrandTotal: subtotal + FlatShippingFee + tax,
	}
}

// taskState tracks where a settlement stands. Only a processing task can be
// cancelled; once settle has claimed the task as committing, the outcome is
// an order and Cancel reports nothing in progress.
type taskState int

const (
	taskProcessing taskState = iota
	taskCommitting
	taskCancelled
	taskSettled
)

// checkoutTask is one customer's in-flight settlement. state and orderID are
// guarded by the service mutex.
type checkoutTask struct {
	cancel  context.CancelFunc
	quote   ports.Quote
	items   []domain.LineItem
	orderID string
	state   taskState
}

// CheckoutService runs the Idle -> Processing -> Idle settlement flow, one
// flow per customer at a time. The settlement delay is cancellable: Cancel
// and the settlement goroutine race for the task state under the service
// mutex and exactly one side wins. Either the cart is unlocked with its
// contents intact, or the order is placed and the cart cleared, never both.
type CheckoutService struct {
	mu       sync.Mutex
	tasks    map[string]*checkoutTask
	carts    *CartService
	orders   ports.OrderRepository
	payments ports.PaymentRepository
	delay    time.Duration
	logger   zerolog.Logger
	wg       sync.WaitGroup
}

func NewCheckoutService(carts *CartService, orders ports.OrderRepository, payments ports.PaymentRepository, delay time.Duration, logger zerolog.Logger) *CheckoutService {
	if delay <= 0 {
		delay = defaultSettlementDelay
	}
	return &CheckoutService{
		tasks:    make(map[string]*checkoutTask),
		carts:    carts,
		orders:   orders,
		payments: payments,
		delay:    delay,
		logger:   logger,
	}
}

func (s *CheckoutService) Start(ctx context.Context, input ports.StartCheckoutInput) (*ports.CheckoutStatus, error) {
	s.mu.Lock()
	if task, ok := s.tasks[input.CustomerID]; ok && task.state != taskSettled {
		s.mu.Unlock()
		return nil, domain.ErrCheckoutInProgress
	}
	// A leftover settled entry is stale once a new checkout begins.
	delete(s.tasks, input.CustomerID)
	s.mu.Unlock()

	items, subtotal, err := s.carts.Lock(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	taskCtx, cancel := context.WithCancel(context.Background())
	task := &checkoutTask{
		cancel: cancel,
		quote:  BuildQuote(subtotal),
		items:  items,
	}

	s.mu.Lock()
	s.tasks[input.CustomerID] = task
	s.mu.Unlock()

	s.wg.Add(1)
	go s.settle(taskCtx, input, task)

	s.logger.Info().
		Str("customer_id", input.CustomerID).
		Float64("grand_total", task.quote.GrandTotal).
		Msg("checkout started")

	return &ports.CheckoutStatus{State: ports.CheckoutProcessing, Quote: &task.quote}, nil
}

// Cancel aborts a settlement that is still waiting out the delay and unlocks
// the cart with its contents intact. A settlement that has already started
// committing can no longer be cancelled.
func (s *CheckoutService) Cancel(ctx context.Context, customerID string) error {
	s.mu.Lock()
	task, ok := s.tasks[customerID]
	if !ok || task.state != taskProcessing {
		s.mu.Unlock()
		return domain.ErrNoCheckoutInProgress
	}
	task.state = taskCancelled
	delete(s.tasks, customerID)
	s.mu.Unlock()

	task.cancel()
	s.carts.Unlock(ctx, customerID)
	metrics.CheckoutsTotal.WithLabelValues("cancelled").Inc()
	s.logger.Info().Str("customer_id", customerID).Msg("checkout cancelled")
	return nil
}

// Status reports the customer's checkout state. A settled receipt is handed
// out once; reading it drops the entry so the task table only holds
// settlements that are still in flight.
func (s *CheckoutService) Status(_ context.Context, customerID string) *ports.CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[customerID]
	if !ok {
		return &ports.CheckoutStatus{State: ports.CheckoutIdle}
	}
	if task.state == taskSettled {
		delete(s.tasks, customerID)
		return &ports.CheckoutStatus{State: ports.CheckoutIdle, Quote: &task.quote, OrderID: task.orderID}
	}
	return &ports.CheckoutStatus{State: ports.CheckoutProcessing, Quote: &task.quote}
}

// Shutdown cancels every settlement that has not started committing, unlocks
// the affected carts and waits for the settlement goroutines to drain.
func (s *CheckoutService) Shutdown() {
	s.mu.Lock()
	var abandoned []string
	for customerID, task := range s.tasks {
		if task.state == taskProcessing {
			task.state = taskCancelled
			task.cancel()
			abandoned = append(abandoned, customerID)
		}
		delete(s.tasks, customerID)
	}
	s.mu.Unlock()

	for _, customerID := range abandoned {
		s.carts.Unlock(context.Background(), customerID)
	}
	s.wg.Wait()
}

// settle waits out the settlement delay, then writes the order and payment
// and clears the cart. Cancellation during the delay leaves the cart
// untouched apart from releasing the lock.
func (s *CheckoutService) settle(ctx context.Context, input ports.StartCheckoutInput, task *checkoutTask) {
	defer s.wg.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		// Whoever cancelled the task already released the cart lock.
		// Unlocking here could release a lock a newer checkout holds.
		return
	case <-timer.C:
	}

	// The timer fired, but Cancel may have claimed the task first. Whoever
	// moves the state away from processing owns the cart lock.
	s.mu.Lock()
	if task.state != taskProcessing {
		s.mu.Unlock()
		return
	}
	task.state = taskCommitting
	s.mu.Unlock()

	// Detached context: settlement must not be aborted halfway once it has
	// started committing.
	bg := context.Background()

	order, err := s.placeOrder(bg, input, task)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", input.CustomerID).Msg("settlement failed")
		s.failTask(bg, input.CustomerID, task)
		return
	}

	if err := s.carts.clearSettled(bg, input.CustomerID); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to clear cart after settlement")
		s.carts.Unlock(bg, input.CustomerID)
	}

	s.mu.Lock()
	task.state = taskSettled
	task.orderID = order.ID
	s.mu.Unlock()

	metrics.CheckoutsTotal.WithLabelValues("settled").Inc()
	metrics.CheckoutAmount.Observe(task.quote.GrandTotal)

	s.logger.Info().
		Str("customer_id", input.CustomerID).
		Str("order_id", order.ID).
		Float64("amount", task.quote.GrandTotal).
		Msg("checkout settled")
}

func (s *CheckoutService) placeOrder(ctx context.Context, input ports.StartCheckoutInput, task *checkoutTask) (*domain.Order, error) {
	products := make([]domain.OrderProduct, 0, len(task.items))
	for _, it := range task.items {
		products = append(products, domain.OrderProduct{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		ID:            uuid.NewString(),
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		Products:      products,
		Subtotal:      task.quote.Subtotal,
		Shipping:      task.quote.Shipping,
		Tax:           task.quote.Tax,
		Total:         task.quote.GrandTotal,
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentCompleted,
		PlacedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	method := input.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodCreditCard
	}
	_, err = s.payments.Create(ctx, &domain.Payment{
		ID:      uuid.NewString(),
		OrderID: order.ID,
		Amount:  task.quote.GrandTotal,
		Method:  method,
		Status:  domain.PaymentCompleted,
		PaidAt:  time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to record payment")
	}
	return order, nil
}

func (s *CheckoutService) failTask(ctx context.Context, customerID string, task *checkoutTask) {
	s.mu.Lock()
	delete(s.tasks, customerID)
	s.mu.Unlock()
	s.carts.Unlock(ctx, customerID)
	task.cancel()
}
