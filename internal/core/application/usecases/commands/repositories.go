// Package commands contains the write-side use cases of the CQRS split.
// Every command follows the same shape: a validated command object, a
// handler owning a unit-of-work factory, and a Handle method that runs the
// whole operation inside one transaction.
package commands

import (
	"context"

	"foodfast/internal/core/ports"
)

// Unit-of-work interfaces scoped to what each command actually touches.
// Handlers depend on the narrowest interface that covers their repositories,
// which keeps tests small and makes cross-entity writes explicit.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DroneRepoFactory provides the drone repository within a transaction.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// RestaurantRepoFactory provides the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// MenuItemRepoFactory provides the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CustomerRepoFactory provides the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// DroneUoW manages transactions for drone-only operations.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// DispatchUoW manages transactions that couple an order with a drone:
	// assignment, release, and allocation. Updating the pair through one
	// unit of work is what keeps an enroute order from ever being visible
	// next to a still-available drone.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DroneRepoFactory
	}

	// DispatchUoWFactory creates dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// OrderingUoW manages the order-creation transaction, which reads the
	// customer, restaurant, and menu alongside the order and drone sets.
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		DroneRepoFactory
		RestaurantRepoFactory
		MenuItemRepoFactory
		CustomerRepoFactory
	}

	// OrderingUoWFactory creates ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// RestaurantUoW manages transactions for restaurant catalog operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// MenuUoW manages transactions touching a restaurant's menu.
	MenuUoW interface {
		TxManager
		RestaurantRepoFactory
		MenuItemRepoFactory
	}

	// MenuUoWFactory creates menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// CustomerUoW manages transactions for customer operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}
)
