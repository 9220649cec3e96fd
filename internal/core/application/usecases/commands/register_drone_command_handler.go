package commands

import (
	"context"

	"foodfast/internal/core/domain/model/drone"
)

// RegisterDroneCommandHandler adds drones to the fleet. Registration order
// matters downstream: the allocator breaks battery ties in favor of the
// drone registered first.
type RegisterDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewRegisterDroneCommandHandler creates a handler for drone registration.
func NewRegisterDroneCommandHandler(uowFactory DroneUoWFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the drone and returns it.
func (h RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := drone.NewDrone(
		cmd.DroneID(),
		cmd.Identifier(),
		cmd.Status(),
		cmd.MaxPayloadKg(),
		cmd.BatteryLevel(),
		cmd.HomeBase(),
		cmd.CurrentLocation(),
		cmd.LastMaintenance(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DroneRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
