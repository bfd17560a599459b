package ports

import "context"

const (
	CheckoutIdle       = "idle"
	CheckoutProcessing = "processing"
)

// Quote is the presentation-layer pricing composed on top of the cart's
// subtotal: a flat shipping fee plus a proportional tax. It is computed by
// the checkout flow, never by the cart aggregate itself.
type Quote struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// CheckoutStatus reports where one customer's checkout flow stands.
// OrderID is set once a settlement has completed.
type CheckoutStatus struct {
	State   string `json:"state"`
	Quote   *Quote `json:"quote,omitempty"`
	OrderID string `json:"order_id,omitempty"`
}

type StartCheckoutInput struct {
	CustomerID    string
	CustomerName  string
	PaymentMethod string
}

type CheckoutService interface {
	// Start locks the cart and arms the settlement timer. It returns the
	// processing status immediately; settlement happens asynchronously.
	Start(ctx context.Context, input StartCheckoutInput) (*CheckoutStatus, error)
	// Cancel stops an in-flight settlement and unlocks the cart intact.
	Cancel(ctx context.Context, customerID string) error
	Status(ctx context.Context, customerID string) *CheckoutStatus
	// Shutdown cancels every in-flight checkout; used at server teardown.
	Shutdown()
}
