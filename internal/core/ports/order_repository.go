// Package ports defines the persistence interfaces the core depends on.
// Adapters (the JSON file store and the PostgreSQL store) implement these;
// the core never sees which one is wired.
package ports

import (
	"context"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates. Orders are never deleted;
// cancellation is a status, not a removal.
type OrderRepository interface {
	// Add saves a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID, returning errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves orders in the given status, in creation order.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByCustomer retrieves a customer's orders in creation order.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetFirstAwaitingDrone retrieves the oldest order parked in
	// awaiting_drone, returning errs.ErrObjectNotFound when none waits.
	GetFirstAwaitingDrone(ctx context.Context) (*order.Order, error)
}
