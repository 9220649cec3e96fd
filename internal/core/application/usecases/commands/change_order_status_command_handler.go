package commands

import (
	"context"
	"time"

	"foodfast/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves orders through their lifecycle.
// When the transition enters a terminal status the assigned drone, if any,
// is released back to available in the same transaction while the order
// keeps the drone reference as delivery history.
type ChangeOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory DispatchUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the status transition, persists every affected record and
// returns the updated order.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	releasedDroneID, err := o.TransitionTo(cmd.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if releasedDroneID != nil {
		droneRepo := uow.DroneRepository()

		d, err := droneRepo.Get(ctx, *releasedDroneID)
		if err != nil {
			return nil, err
		}

		d.Release()
		if err = droneRepo.Update(ctx, d); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
