package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/core/domain/services"
	"foodfast/internal/pkg/errs"
)

var (
	// ErrMenuItemNotOnMenu occurs when a requested item does not belong to
	// the restaurant the order is placed with.
	ErrMenuItemNotOnMenu = errors.New("menu item does not belong to the restaurant")

	// ErrMenuItemUnavailable occurs when a requested item is on the menu but
	// is currently marked unavailable.
	ErrMenuItemUnavailable = errors.New("menu item is currently unavailable")
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the requested menu items against the restaurant's catalog, snapshots
// their names and prices into order lines, and optionally runs drone allocation
// in the same transaction when the order asks for automatic assignment.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	allocator  services.DroneAllocator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewDroneAllocator(),
	}
}

// Handle processes the order creation command and returns the created order.
// The customer and restaurant must exist. Line prices are taken from the menu
// at creation time, so later menu edits never change an existing order's total.
// When no delivery address is given the customer's stored address is used.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return nil, err
	}

	menu, err := uow.MenuItemRepository().GetAllByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	lines, err := resolveLines(cmd.Items(), menu)
	if err != nil {
		return nil, err
	}

	deliveryAddress := cmd.DeliveryAddress()
	if deliveryAddress == "" {
		deliveryAddress = customer.Address()
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		deliveryAddress,
		cmd.Instructions(),
		lines,
		cmd.AutoAssign(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if cmd.AutoAssign() {
		if err = h.allocate(ctx, uow, newOrder); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// allocate tries to put a drone on the freshly created order. Finding no
// eligible drone is a normal outcome that leaves the order awaiting one.
func (h CreateOrderCommandHandler) allocate(ctx context.Context, uow OrderingUoW, o *order.Order) error {
	droneRepo := uow.DroneRepository()
	drones, err := droneRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	selected, err := h.allocator.Allocate(o, drones, time.Now().UTC())
	if err != nil {
		return err
	}

	if selected != nil {
		if err = droneRepo.Update(ctx, selected); err != nil {
			return err
		}
	}

	return uow.OrderRepository().Update(ctx, o)
}

func resolveLines(items []OrderItemInput, menu []*restaurant.MenuItem) ([]order.Line, error) {
	byID := make(map[string]*restaurant.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID().String()] = item
	}

	lines := make([]order.Line, 0, len(items))
	for _, requested := range items {
		menuItem, ok := byID[requested.MenuItemID().String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotOnMenu, requested.MenuItemID())
		}
		if !menuItem.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, menuItem.Name())
		}

		line, err := order.NewLine(menuItem.ID(), menuItem.Name(), requested.Quantity(), menuItem.Price())
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("items", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
