package commands

import (
	"context"

	"foodfast/internal/core/domain/model/drone"
)

// RechargeDronesCommandHandler advances charging drones by the command's
// increment. A drone that reaches full battery flips back to available and
// becomes visible to the allocator on the next round.
type RechargeDronesCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewRechargeDronesCommandHandler creates a handler for fleet recharging.
func NewRechargeDronesCommandHandler(uowFactory DroneUoWFactory) RechargeDronesCommandHandler {
	return RechargeDronesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recharges every charging drone in one transaction. Drones in other
// statuses are untouched.
func (h RechargeDronesCommandHandler) Handle(ctx context.Context, cmd RechargeDronesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	drones, err := droneRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, d := range drones {
		if d.Status() != drone.Charging {
			continue
		}

		d.Recharge(cmd.Increment())
		if err = droneRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
