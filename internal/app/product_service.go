package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/stockroom/internal/core/product"
	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

// ProductServiceImpl implements the ProductService interface.
type ProductServiceImpl struct {
	productRepo secondary.ProductRepository
}

// NewProductService creates a new ProductService with injected dependencies.
func NewProductService(productRepo secondary.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{
		productRepo: productRepo,
	}
}

// CreateProduct validates the given fields and persists a new product.
// The presence check runs before numeric parsing so an empty field is
// reported as such rather than as a parse failure.
func (s *ProductServiceImpl) CreateProduct(ctx context.Context, req primary.CreateProductRequest) (*primary.Product, error) {
	if req.Name == "" || req.Price == "" || req.Quantity == "" {
		return nil, fault.Validationf("Cannot add product. Please fill in all the fields")
	}

	price, quantity, err := parseProductValues(req.Price, req.Quantity)
	if err != nil {
		return nil, err
	}

	guard := product.CanStoreProduct(product.StoreProductContext{
		Price:    price,
		Quantity: quantity,
	})
	if !guard.Allowed {
		return nil, fault.Validationf("%s", guard.Reason)
	}

	record := &secondary.ProductRecord{
		Name:     req.Name,
		Price:    price,
		Quantity: quantity,
	}
	id, err := s.productRepo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	created, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created product: %w", err)
	}
	return s.recordToProduct(created), nil
}

// GetProduct retrieves a product by its id, given in text form.
func (s *ProductServiceImpl) GetProduct(ctx context.Context, idText string) (*primary.Product, error) {
	id, err := parseID(idText)
	if err != nil {
		return nil, err
	}

	record, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.recordToProduct(record), nil
}

// ListProducts retrieves all products.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]*primary.Product, error) {
	records, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*primary.Product, len(records))
	for i, r := range records {
		products[i] = s.recordToProduct(r)
	}
	return products, nil
}

// UpdateProduct replaces all value fields of an existing product.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req primary.UpdateProductRequest) (*primary.Product, error) {
	if req.Name == "" || req.Price == "" || req.Quantity == "" {
		return nil, fault.Validationf("Cannot update product. Please fill in all the fields")
	}

	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	price, quantity, err := parseProductValues(req.Price, req.Quantity)
	if err != nil {
		return nil, err
	}

	guard := product.CanStoreProduct(product.StoreProductContext{
		Price:    price,
		Quantity: quantity,
	})
	if !guard.Allowed {
		return nil, fault.Validationf("%s", guard.Reason)
	}

	record := &secondary.ProductRecord{
		ID:       id,
		Name:     req.Name,
		Price:    price,
		Quantity: quantity,
	}
	if err := s.productRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}
	return s.recordToProduct(updated), nil
}

// DeleteProduct removes a product by id.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

// parseProductValues converts the price and quantity fields from their
// entered text form.
func parseProductValues(priceText, quantityText string) (int64, int64, error) {
	price, err := strconv.ParseInt(priceText, 10, 64)
	if err != nil {
		return 0, 0, fault.Validationf("Invalid data fields")
	}
	quantity, err := strconv.ParseInt(quantityText, 10, 64)
	if err != nil {
		return 0, 0, fault.Validationf("Invalid data fields")
	}
	return price, quantity, nil
}

func (s *ProductServiceImpl) recordToProduct(r *secondary.ProductRecord) *primary.Product {
	return &primary.Product{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure ProductServiceImpl implements the interface.
var _ primary.ProductService = (*ProductServiceImpl)(nil)
