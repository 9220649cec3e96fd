package commands

import (
	"errors"
	"time"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var ErrUpdateDroneCommandIsNotConstructed = errors.New(
	"UpdateDroneCommand must be created via NewUpdateDroneCommand constructor")

// UpdateDroneCommand is a partial update of a drone's record. Nil fields are
// left untouched.
type UpdateDroneCommand struct {
	droneID         kernel.UUID
	identifier      *string
	status          *drone.Status
	maxPayloadKg    *float64
	batteryLevel    *int
	homeBase        *string
	currentLocation *string
	lastMaintenance *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDroneCommand creates a command to update a drone.
func NewUpdateDroneCommand(
	droneID kernel.UUID,
	identifier *string,
	status *drone.Status,
	maxPayloadKg *float64,
	batteryLevel *int,
	homeBase *string,
	currentLocation *string,
	lastMaintenance *time.Time,
) (UpdateDroneCommand, error) {
	if err := droneID.Validate(); err != nil {
		return UpdateDroneCommand{}, errs.NewValueIsInvalidErrorWithCause("UpdateDroneCommand", err)
	}

	return UpdateDroneCommand{
		droneID:         droneID,
		identifier:      identifier,
		status:          status,
		maxPayloadKg:    maxPayloadKg,
		batteryLevel:    batteryLevel,
		homeBase:        homeBase,
		currentLocation: currentLocation,
		lastMaintenance: lastMaintenance,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDroneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneCommandIsNotConstructed)
}

// DroneID returns the target drone's identifier.
func (c UpdateDroneCommand) DroneID() kernel.UUID { return c.droneID }

// NewChangeDroneStatusCommand creates an update command that only changes the
// drone's status, backing the dedicated status endpoint.
func NewChangeDroneStatusCommand(droneID kernel.UUID, status drone.Status) (UpdateDroneCommand, error) {
	return NewUpdateDroneCommand(droneID, nil, &status, nil, nil, nil, nil, nil)
}
