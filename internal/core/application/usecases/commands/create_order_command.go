package commands

import (
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

// OrderItemInput is one requested order line: a reference to a menu item and
// a quantity. Name and price are resolved from the menu inside the handler.
type OrderItemInput struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewOrderItemInput creates a validated order item input.
func NewOrderItemInput(menuItemID kernel.UUID, quantity int) (OrderItemInput, error) {
	if err := menuItemID.Validate(); err != nil {
		return OrderItemInput{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if quantity <= 0 {
		return OrderItemInput{}, errs.NewValueIsInvalidError("quantity")
	}
	return OrderItemInput{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the referenced menu item identifier.
func (i OrderItemInput) MenuItemID() kernel.UUID { return i.menuItemID }

// Quantity returns the requested quantity.
func (i OrderItemInput) Quantity() int { return i.quantity }

// CreateOrderCommand is a command to place a new order for a customer at a
// restaurant, optionally attempting drone allocation in the same transaction.
type CreateOrderCommand struct {
	guard guard.ConstructorGuard

	orderID         kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	items           []OrderItemInput
	deliveryAddress string
	instructions    string
	autoAssign      bool
}

// NewCreateOrderCommand creates a new CreateOrderCommand with validation.
// An empty deliveryAddress means the handler falls back to the customer's
// stored address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItemInput,
	deliveryAddress string,
	instructions string,
	autoAssign bool,
) (CreateOrderCommand, error) {
	err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	)
	if err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("CreateOrderCommand", err)
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	return CreateOrderCommand{
		guard:           guard.NewConstructorGuard(),
		orderID:         orderID,
		customerID:      customerID,
		restaurantID:    restaurantID,
		items:           items,
		deliveryAddress: deliveryAddress,
		instructions:    instructions,
		autoAssign:      autoAssign,
	}, nil
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// RestaurantID returns the restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput { return c.items }

// DeliveryAddress returns the requested delivery address, possibly empty.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// Instructions returns the free-form delivery instructions.
func (c CreateOrderCommand) Instructions() string { return c.instructions }

// AutoAssign reports whether allocation should run right after creation.
func (c CreateOrderCommand) AutoAssign() bool { return c.autoAssign }

// Validate checks that the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand")
