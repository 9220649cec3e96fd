package commands

import (
	"context"
	"time"

	"foodfast/internal/core/domain/model/order"
)

// AssignDroneCommandHandler handles manual drone assignment. Unlike the
// automatic allocator it takes the drone as given, so a drone below the
// dispatch battery floor can still be assigned by an operator as long as it
// is available.
type AssignDroneCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignDroneCommandHandler creates a handler for manual assignment.
func NewAssignDroneCommandHandler(uowFactory DispatchUoWFactory) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the drone to the order and moves the order to enroute.
// The order must not be in a terminal state and the drone must be available.
// Both records are updated in one transaction.
func (h AssignDroneCommandHandler) Handle(ctx context.Context, cmd AssignDroneCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if o.Status().IsTerminal() {
		return nil, order.ErrOrderCompleted
	}

	d, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return nil, err
	}

	if err = d.BeginDelivery(); err != nil {
		return nil, err
	}
	if err = o.AssignDrone(d.ID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
