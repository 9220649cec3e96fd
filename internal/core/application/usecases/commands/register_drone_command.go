package commands

import (
	"errors"
	"time"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var ErrRegisterDroneCommandIsNotConstructed = errors.New(
	"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor")

// RegisterDroneCommand is a request to add a drone to the fleet. Field
// validation beyond identity lives in the drone aggregate; the command only
// carries the registration data.
type RegisterDroneCommand struct {
	droneID         kernel.UUID
	identifier      string
	status          drone.Status
	maxPayloadKg    float64
	batteryLevel    int
	homeBase        string
	currentLocation string
	lastMaintenance time.Time

	guard guard.ConstructorGuard
}

// NewRegisterDroneCommand creates a command to register a drone. An empty
// currentLocation defaults to the home base inside the aggregate.
func NewRegisterDroneCommand(
	droneID kernel.UUID,
	identifier string,
	status drone.Status,
	maxPayloadKg float64,
	batteryLevel int,
	homeBase string,
	currentLocation string,
	lastMaintenance time.Time,
) (RegisterDroneCommand, error) {
	if err := droneID.Validate(); err != nil {
		return RegisterDroneCommand{}, errs.NewValueIsInvalidErrorWithCause("RegisterDroneCommand", err)
	}

	return RegisterDroneCommand{
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
func (c RegisterDroneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDroneCommandIsNotConstructed)
}

// DroneID returns the identifier assigned to the new drone.
func (c RegisterDroneCommand) DroneID() kernel.UUID { return c.droneID }

// Identifier returns the fleet call sign.
func (c RegisterDroneCommand) Identifier() string { return c.identifier }

// Status returns the initial status.
func (c RegisterDroneCommand) Status() drone.Status { return c.status }

// MaxPayloadKg returns the payload capacity in kilograms.
func (c RegisterDroneCommand) MaxPayloadKg() float64 { return c.maxPayloadKg }

// BatteryLevel returns the initial battery percentage.
func (c RegisterDroneCommand) BatteryLevel() int { return c.batteryLevel }

// HomeBase returns the drone's home base.
func (c RegisterDroneCommand) HomeBase() string { return c.homeBase }

// CurrentLocation returns the drone's starting location, possibly empty.
func (c RegisterDroneCommand) CurrentLocation() string { return c.currentLocation }

// LastMaintenance returns the last maintenance timestamp.
func (c RegisterDroneCommand) LastMaintenance() time.Time { return c.lastMaintenance }
