package commands

import (
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var ErrAssignDroneCommandIsNotConstructed = errors.New(
	"AssignDroneCommand must be created via NewAssignDroneCommand constructor")

// AssignDroneCommand is a request to put a specific drone on a specific
// order, bypassing the battery-greedy selection used by automatic allocation.
type AssignDroneCommand struct {
	orderID kernel.UUID
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates a command to assign a drone to an order.
func NewAssignDroneCommand(orderID, droneID kernel.UUID) (AssignDroneCommand, error) {
	if err := errors.Join(orderID.Validate(), droneID.Validate()); err != nil {
		return AssignDroneCommand{}, errs.NewValueIsInvalidErrorWithCause("AssignDroneCommand", err)
	}

	return AssignDroneCommand{
		orderID: orderID,
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignDroneCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DroneID returns the drone's identifier.
func (c AssignDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}
