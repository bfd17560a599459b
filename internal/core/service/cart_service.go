package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// CartService owns one cart aggregate per customer. All reads and writes go
// through the service's lock, so every caller observes the latest completed
// mutation. Mutations are written through to the snapshot repository so a
// cart survives a process restart.
type CartService struct {
	mu       sync.Mutex
	carts    map[string]*domain.Cart
	products ports.ProductRepository
	snapshot ports.CartRepository
	logger   zerolog.Logger
}

func NewCartService(products ports.ProductRepository, snapshot ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{
		carts:    make(map[string]*domain.Cart),
		products: products,
		snapshot: snapshot,
		logger:   logger,
	}
}

func (s *CartService) Get(ctx context.Context, customerID string) (*ports.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

// AddItem resolves the product from the catalog and adds one unit of it.
// Inactive or unknown products are rejected.
func (s *CartService) AddItem(ctx context.Context, customerID, productID string) (*ports.CartView, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != domain.StatusActive {
		return nil, domain.ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(product.ID, product.Name, product.Price, product.Image); err != nil {
		return nil, err
	}
	return s.persist(ctx, customerID, cart)
}

func (s *CartService) UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*ports.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return s.persist(ctx, customerID, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, productID string) (*ports.CartView, error) {
	return s.UpdateQuantity(ctx, customerID, productID, 0)
}

// Clear empties the cart and drops its snapshot. A checkout-locked cart
// refuses the clear; only settlement may empty it then.
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(ctx, customerID)
	if err != nil {
		return err
	}
	if cart.Locked() {
		return domain.ErrCartLocked
	}
	cart.Clear()
	return s.snapshot.Delete(ctx, customerID)
}

// clearSettled empties a checkout-locked cart and releases the lock. It is
// the settlement step of the checkout flow, the one writer allowed to empty
// a locked cart.
func (s *CartService) clearSettled(ctx context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(ctx, customerID)
	if err != nil {
		return err
	}
	cart.Clear()
	cart.Unlock()
	return s.snapshot.Delete(ctx, customerID)
}

// Lock reserves the cart for a checkout. Fails when the cart is empty or a
// checkout already holds it.
func (s *CartService) Lock(ctx context.Context, customerID string) ([]domain.LineItem, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(ctx, customerID)
	if err != nil {
		return nil, 0, err
	}
	if cart.Locked() {
		return nil, 0, domain.ErrCartLocked
	}
	if cart.Count() == 0 {
		return nil, 0, domain.ErrEmptyCart
	}
	cart.Lock()
	return cart.Items(), cart.Total(), nil
}

// Unlock releases a checkout reservation, leaving the contents intact.
func (s *CartService) Unlock(ctx context.Context, customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[customerID]; ok {
		cart.Unlock()
	}
}

// cart returns the in-memory aggregate for customerID, rehydrating it from
// the snapshot repository on first touch. A corrupt or unreadable snapshot
// degrades to an empty cart with a logged warning.
func (s *CartService) cart(ctx context.Context, customerID string) (*domain.Cart, error) {
	if cart, ok := s.carts[customerID]; ok {
		return cart, nil
	}

	cart := domain.NewCart()
	items, err := s.snapshot.Load(ctx, customerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("customer_id", customerID).Msg("cart snapshot unreadable, starting empty")
	}
	cart.Restore(items)

	s.carts[customerID] = cart
	return cart, nil
}

func (s *CartService) persist(ctx context.Context, customerID string, cart *domain.Cart) (*ports.CartView, error) {
	if err := s.snapshot.Save(ctx, customerID, cart.Items()); err != nil {
		return nil, err
	}
	return view(cart), nil
}

func view(cart *domain.Cart) *ports.CartView {
	return &ports.CartView{
		Items:     cart.Items(),
		ItemCount: cart.Count(),
		Subtotal:  cart.Total(),
	}
}
