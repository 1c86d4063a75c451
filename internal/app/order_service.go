package app

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/stockroom/internal/core/order"
	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

// OrderServiceImpl implements the OrderService interface.
type OrderServiceImpl struct {
	orderRepo   secondary.OrderRepository
	clientRepo  secondary.ClientRepository
	productRepo secondary.ProductRepository
	receipts    secondary.ReceiptWriter
	log         *logrus.Logger
}

// NewOrderService creates a new OrderService with injected dependencies.
func NewOrderService(
	orderRepo secondary.OrderRepository,
	clientRepo secondary.ClientRepository,
	productRepo secondary.ProductRepository,
	receipts secondary.ReceiptWriter,
	log *logrus.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		receipts:    receipts,
		log:         log,
	}
}

// PlaceOrder checks stock, atomically records the order together with the
// stock decrement, and emits a receipt. A receipt write failure does not
// fail the order; it is logged and reported via ReceiptWarning.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, req primary.PlaceOrderRequest) (*primary.PlaceOrderResponse, error) {
	if req.ClientID == "" {
		return nil, fault.Validationf("Please select a client")
	}
	if req.ProductID == "" {
		return nil, fault.Validationf("Please select a product")
	}

	clientID, err := parseID(req.ClientID)
	if err != nil {
		return nil, err
	}
	productID, err := parseID(req.ProductID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.ParseInt(req.Quantity, 10, 64)
	if err != nil {
		return nil, fault.Validationf("Please enter quantity")
	}

	guard := order.CanPlaceOrder(order.PlaceOrderContext{
		Quantity:  quantity,
		Available: product.Quantity,
	})
	if !guard.Allowed {
		return nil, fault.Validationf("%s", guard.Reason)
	}

	// Order insert and stock decrement happen in one transaction; the
	// guard above is only the friendly pre-check.
	record := &secondary.OrderRecord{
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  quantity,
	}
	orderID, err := s.orderRepo.Place(ctx, record)
	if err != nil {
		return nil, err
	}

	total := quantity * product.Price
	resp := &primary.PlaceOrderResponse{
		OrderID:        orderID,
		RemainingStock: product.Quantity - quantity,
		Total:          total,
	}

	path, err := s.receipts.Write(ctx, secondary.ReceiptData{
		ClientName:  client.Name,
		Address:     client.Address,
		Email:       client.Email,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		Total:       total,
		PlacedAt:    time.Now(),
	})
	if err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Warn("order placed but receipt could not be written")
		resp.ReceiptWarning = "order placed, but the receipt could not be written: " + err.Error()
		return resp, nil
	}
	resp.ReceiptPath = path

	return resp, nil
}

// GetOrder retrieves an order by its id, given in text form.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, idText string) (*primary.Order, error) {
	id, err := parseID(idText)
	if err != nil {
		return nil, err
	}

	record, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o := s.recordToOrder(record)
	if client, err := s.clientRepo.GetByID(ctx, record.ClientID); err == nil {
		o.ClientName = client.Name
	}
	if product, err := s.productRepo.GetByID(ctx, record.ProductID); err == nil {
		o.ProductName = product.Name
		o.Total = record.Quantity * product.Price
	}
	return o, nil
}

// ListOrders retrieves all orders, enriched with client and product names
// for display.
func (s *OrderServiceImpl) ListOrders(ctx context.Context) ([]*primary.Order, error) {
	records, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	clientNames := map[int64]string{}
	if clients, err := s.clientRepo.List(ctx); err == nil {
		for _, c := range clients {
			clientNames[c.ID] = c.Name
		}
	}
	productNames := map[int64]string{}
	productPrices := map[int64]int64{}
	if products, err := s.productRepo.List(ctx); err == nil {
		for _, p := range products {
			productNames[p.ID] = p.Name
			productPrices[p.ID] = p.Price
		}
	}

	orders := make([]*primary.Order, len(records))
	for i, r := range records {
		o := s.recordToOrder(r)
		o.ClientName = clientNames[r.ClientID]
		o.ProductName = productNames[r.ProductID]
		o.Total = r.Quantity * productPrices[r.ProductID]
		orders[i] = o
	}
	return orders, nil
}

func (s *OrderServiceImpl) recordToOrder(r *secondary.OrderRecord) *primary.Order {
	return &primary.Order{
		ID:        r.ID,
		ClientID:  r.ClientID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure OrderServiceImpl implements the interface.
var _ primary.OrderService = (*OrderServiceImpl)(nil)
