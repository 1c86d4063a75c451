// Package app implements the primary ports: field parsing, guard
// evaluation, and orchestration of the persistence adapters.
package app

import (
	"context"
	"fmt"

	"github.com/example/stockroom/internal/core/client"
	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

// ClientServiceImpl implements the ClientService interface.
type ClientServiceImpl struct {
	clientRepo secondary.ClientRepository
}

// NewClientService creates a new ClientService with injected dependencies.
func NewClientService(clientRepo secondary.ClientRepository) *ClientServiceImpl {
	return &ClientServiceImpl{
		clientRepo: clientRepo,
	}
}

// CreateClient validates the given fields and persists a new client.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req primary.CreateClientRequest) (*primary.Client, error) {
	guard := client.CanCreateClient(client.StoreClientContext{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	})
	if !guard.Allowed {
		return nil, fault.Validationf("%s", guard.Reason)
	}

	record := &secondary.ClientRecord{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	id, err := s.clientRepo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	created, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created client: %w", err)
	}

	return s.recordToClient(created), nil
}

// GetClient retrieves a client by its id, given in text form.
func (s *ClientServiceImpl) GetClient(ctx context.Context, idText string) (*primary.Client, error) {
	id, err := parseID(idText)
	if err != nil {
		return nil, err
	}

	record, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.recordToClient(record), nil
}

// ListClients retrieves all clients.
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]*primary.Client, error) {
	records, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	clients := make([]*primary.Client, len(records))
	for i, r := range records {
		clients[i] = s.recordToClient(r)
	}
	return clients, nil
}

// UpdateClient replaces all value fields of an existing client.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req primary.UpdateClientRequest) (*primary.Client, error) {
	guard := client.CanUpdateClient(client.StoreClientContext{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	})
	if !guard.Allowed {
		return nil, fault.Validationf("%s", guard.Reason)
	}

	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	record := &secondary.ClientRecord{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := s.clientRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	updated, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated client: %w", err)
	}
	return s.recordToClient(updated), nil
}

// DeleteClient removes a client by id.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id int64) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *ClientServiceImpl) recordToClient(r *secondary.ClientRecord) *primary.Client {
	return &primary.Client{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure ClientServiceImpl implements the interface.
var _ primary.ClientService = (*ClientServiceImpl)(nil)
