package app

import (
	"context"

	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/secondary"
)

// ============================================================================
// Shared Mock Repositories
// ============================================================================

// mockClientRepository implements secondary.ClientRepository for testing.
type mockClientRepository struct {
	clients   map[int64]*secondary.ClientRecord
	nextID    int64
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockClientRepository() *mockClientRepository {
	return &mockClientRepository{
		clients: make(map[int64]*secondary.ClientRecord),
		nextID:  1,
	}
}

func (m *mockClientRepository) Create(ctx context.Context, rec *secondary.ClientRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	stored := *rec
	stored.ID = id
	m.clients[id] = &stored
	return id, nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id int64) (*secondary.ClientRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, fault.NotFoundf("The client with id = %d was not found!", id)
}

func (m *mockClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []*secondary.ClientRecord{}
	for i := int64(1); i < m.nextID; i++ {
		if c, ok := m.clients[i]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockClientRepository) Update(ctx context.Context, rec *secondary.ClientRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.clients[rec.ID]; !ok {
		return fault.NotFoundf("The client with id = %d was not found!", rec.ID)
	}
	stored := *rec
	m.clients[rec.ID] = &stored
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.clients, id)
	return nil
}

// mockProductRepository implements secondary.ProductRepository for testing.
type mockProductRepository struct {
	products  map[int64]*secondary.ProductRecord
	nextID    int64
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[int64]*secondary.ProductRecord),
		nextID:   1,
	}
}

func (m *mockProductRepository) Create(ctx context.Context, rec *secondary.ProductRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	stored := *rec
	stored.ID = id
	m.products[id] = &stored
	return id, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*secondary.ProductRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.products[id]; ok {
		// Return a copy so callers see a snapshot, like the real adapter's
		// row scan, rather than aliasing the mock's internal state.
		snapshot := *p
		return &snapshot, nil
	}
	return nil, fault.NotFoundf("The product with id = %d was not found!", id)
}

func (m *mockProductRepository) List(ctx context.Context) ([]*secondary.ProductRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []*secondary.ProductRecord{}
	for i := int64(1); i < m.nextID; i++ {
		if p, ok := m.products[i]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProductRepository) Update(ctx context.Context, rec *secondary.ProductRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.products[rec.ID]; !ok {
		return fault.NotFoundf("The product with id = %d was not found!", rec.ID)
	}
	stored := *rec
	m.products[rec.ID] = &stored
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.products, id)
	return nil
}
