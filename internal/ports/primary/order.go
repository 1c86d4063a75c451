package primary

import "context"

// OrderService defines the primary port for order operations.
// Orders are immutable once placed; there is no update or cancel path.
type OrderService interface {
	// PlaceOrder checks stock, atomically records the order and decrements
	// the product's stock, and emits a text receipt.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error)

	// GetOrder retrieves an order by its id, given in text form.
	GetOrder(ctx context.Context, idText string) (*Order, error)

	// ListOrders retrieves all orders, enriched with client and product
	// display names.
	ListOrders(ctx context.Context) ([]*Order, error)
}

// PlaceOrderRequest contains the user's selection for a new order.
// All fields arrive as entered, in text form.
type PlaceOrderRequest struct {
	ClientID  string
	ProductID string
	Quantity  string
}

// PlaceOrderResponse contains the result of placing an order.
// ReceiptWarning is set when the order succeeded but the receipt file
// could not be written.
type PlaceOrderResponse struct {
	OrderID        int64
	RemainingStock int64
	Total          int64
	ReceiptPath    string
	ReceiptWarning string
}

// Order represents an order entity at the port boundary.
type Order struct {
	ID          int64
	ClientID    int64
	ProductID   int64
	Quantity    int64
	ClientName  string
	ProductName string
	Total       int64
	CreatedAt   string
}
