package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

var ErrInvalidTransition = errors.New("invalid order status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrForbidden = errors.New("access forbidden")
var ErrCheckoutInProgress = errors.New("checkout already in progress")
var ErrNoCheckoutInProgress = errors.New("no checkout in progress")
var ErrEmptyCart = errors.New("cart is empty")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodPaypal     = "paypal"
	PaymentMethodCash       = "cash"
)

// OrderProduct is a denormalized line captured at checkout time, so later
// catalog edits never rewrite order history.
type OrderProduct struct {
	ProductID string  `json:"id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"price" bson:"unit_price"`
}

// Order is a settled checkout.
type Order struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	CustomerID    string         `json:"customer_id" bson:"customer_id"`
	CustomerName  string         `json:"customer_name" bson:"customer_name"`
	Products      []OrderProduct `json:"products" bson:"products"`
	Subtotal      float64        `json:"subtotal" bson:"subtotal"`
	Shipping      float64        `json:"shipping" bson:"shipping"`
	Tax           float64        `json:"tax" bson:"tax"`
	Total         float64        `json:"total" bson:"total"`
	Status        OrderStatus    `json:"status" bson:"status"`
	PaymentStatus PaymentStatus  `json:"payment_status" bson:"payment_status"`
	PlacedAt      time.Time      `json:"placed_at" bson:"placed_at"`
}

// Payment records one settlement attempt against an order.
type Payment struct {
	ID      string        `json:"id" bson:"_id,omitempty"`
	OrderID string        `json:"order_id" bson:"order_id"`
	Amount  float64       `json:"amount" bson:"amount"`
	Method  string        `json:"method" bson:"method"`
	Status  PaymentStatus `json:"status" bson:"status"`
	PaidAt  time.Time     `json:"paid_at" bson:"paid_at"`
}
