package commands

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/drone"
)

// UpdateDroneCommandHandler applies partial updates to a drone record,
// including operator-driven status changes. Status edits here are permissive:
// an operator may pull a delivering drone into maintenance, and the order it
// carried keeps its reference until its own lifecycle releases it.
type UpdateDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewUpdateDroneCommandHandler creates a handler for drone updates.
func NewUpdateDroneCommandHandler(uowFactory DroneUoWFactory) UpdateDroneCommandHandler {
	return UpdateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the non-nil fields of the command and returns the drone.
func (h UpdateDroneCommandHandler) Handle(ctx context.Context, cmd UpdateDroneCommand) (*drone.Drone, error) {
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

	droneRepo := uow.DroneRepository()

	d, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return nil, err
	}

	if err = applyDroneUpdate(d, cmd); err != nil {
		return nil, err
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func applyDroneUpdate(d *drone.Drone, cmd UpdateDroneCommand) error {
	var err error
	if cmd.identifier != nil {
		err = errors.Join(err, d.SetIdentifier(*cmd.identifier))
	}
	if cmd.status != nil {
		err = errors.Join(err, d.ChangeStatus(*cmd.status))
	}
	if cmd.maxPayloadKg != nil {
		err = errors.Join(err, d.SetMaxPayloadKg(*cmd.maxPayloadKg))
	}
	if cmd.batteryLevel != nil {
		err = errors.Join(err, d.SetBatteryLevel(*cmd.batteryLevel))
	}
	if cmd.homeBase != nil {
		err = errors.Join(err, d.SetHomeBase(*cmd.homeBase))
	}
	if cmd.currentLocation != nil {
		d.SetCurrentLocation(*cmd.currentLocation)
	}
	if cmd.lastMaintenance != nil {
		d.SetLastMaintenance(*cmd.lastMaintenance)
	}
	return err
}
