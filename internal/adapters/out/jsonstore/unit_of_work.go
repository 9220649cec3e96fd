package jsonstore

import (
	"context"

	"foodfast/internal/core/ports"
)

// FileUnitOfWorkFactory creates file-backed unit of work instances.
type FileUnitOfWorkFactory struct {
	store *Store
}

// NewFileUnitOfWorkFactory creates a factory bound to one data directory.
func NewFileUnitOfWorkFactory(store *Store) *FileUnitOfWorkFactory {
	return &FileUnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Nothing is locked or loaded until
// Begin runs.
func (f *FileUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &FileUnitOfWork{store: f.store}
}

// FileUnitOfWork stages every change in memory and rewrites the touched
// collection files on Commit. Between Begin and Commit/Rollback it holds the
// store lock, so repositories never see a half-applied multi-record change.
type FileUnitOfWork struct {
	store *Store

	orders      []orderDTO
	drones      []droneDTO
	restaurants []restaurantDTO
	menuItems   []menuItemDTO
	customers   []customerDTO

	dirty map[string]bool

	active bool
}

// Begin locks the store and loads every collection into the staging area.
// Calling Begin on an already-active unit of work is a no-op.
func (uow *FileUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.dirty = make(map[string]bool)

	var err error
	if uow.orders, err = loadCollection[orderDTO](uow.store.path(ordersFile)); err != nil {
		uow.release()
		return err
	}
	if uow.drones, err = loadCollection[droneDTO](uow.store.path(dronesFile)); err != nil {
		uow.release()
		return err
	}
	if uow.restaurants, err = loadCollection[restaurantDTO](uow.store.path(restaurantsFile)); err != nil {
		uow.release()
		return err
	}
	if uow.menuItems, err = loadCollection[menuItemDTO](uow.store.path(menuItemsFile)); err != nil {
		uow.release()
		return err
	}
	if uow.customers, err = loadCollection[customerDTO](uow.store.path(customersFile)); err != nil {
		uow.release()
		return err
	}

	return nil
}

// Commit writes every dirty collection back to disk and releases the store.
func (uow *FileUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return nil
	}

	var err error
	if uow.dirty[ordersFile] && err == nil {
		err = saveCollection(uow.store.path(ordersFile), uow.orders)
	}
	if uow.dirty[dronesFile] && err == nil {
		err = saveCollection(uow.store.path(dronesFile), uow.drones)
	}
	if uow.dirty[restaurantsFile] && err == nil {
		err = saveCollection(uow.store.path(restaurantsFile), uow.restaurants)
	}
	if uow.dirty[menuItemsFile] && err == nil {
		err = saveCollection(uow.store.path(menuItemsFile), uow.menuItems)
	}
	if uow.dirty[customersFile] && err == nil {
		err = saveCollection(uow.store.path(customersFile), uow.customers)
	}

	uow.release()
	return err
}

// Rollback discards the staged changes and releases the store. Safe to call
// after Commit, which makes the usual deferred rollback pattern work.
func (uow *FileUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}
	uow.release()
	return nil
}

func (uow *FileUnitOfWork) release() {
	uow.active = false
	uow.dirty = nil
	uow.store.mu.Unlock()
}

// OrderRepository returns the order repository bound to this unit of work.
func (uow *FileUnitOfWork) OrderRepository() ports.OrderRepository {
	return &FileOrderRepository{uow: uow}
}

// DroneRepository returns the drone repository bound to this unit of work.
func (uow *FileUnitOfWork) DroneRepository() ports.DroneRepository {
	return &FileDroneRepository{uow: uow}
}

// RestaurantRepository returns the restaurant repository bound to this unit of work.
func (uow *FileUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &FileRestaurantRepository{uow: uow}
}

// MenuItemRepository returns the menu item repository bound to this unit of work.
func (uow *FileUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return &FileMenuItemRepository{uow: uow}
}

// CustomerRepository returns the customer repository bound to this unit of work.
func (uow *FileUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &FileCustomerRepository{uow: uow}
}
