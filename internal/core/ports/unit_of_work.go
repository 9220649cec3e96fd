package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for a business operation. All
// repository access inside one operation goes through a single UnitOfWork, so
// cross-entity updates (an order and its drone) land together or not at all.
// Callers must Begin before using a repository and finish with exactly one
// Commit or Rollback; the idiomatic shape is a deferred Rollback, which is a
// no-op after a successful Commit.
type UnitOfWork interface {
	// Begin starts the transaction. For the file store this acquires the
	// single-writer lock; for PostgreSQL it opens a database transaction.
	Begin(ctx context.Context) error

	// Commit atomically applies every change made through the repositories.
	Commit(ctx context.Context) error

	// Rollback discards uncommitted changes. Safe to call after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to this transaction.
	OrderRepository() OrderRepository

	// DroneRepository returns the drone repository bound to this transaction.
	DroneRepository() DroneRepository

	// RestaurantRepository returns the restaurant repository bound to this transaction.
	RestaurantRepository() RestaurantRepository

	// MenuItemRepository returns the menu item repository bound to this transaction.
	MenuItemRepository() MenuItemRepository

	// CustomerRepository returns the customer repository bound to this transaction.
	CustomerRepository() CustomerRepository
}
