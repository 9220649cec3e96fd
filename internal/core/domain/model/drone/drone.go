package drone

import (
	"errors"
	"strings"
	"time"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

const (
	// DispatchBatteryFloor is the minimum battery percentage a drone needs
	// to be eligible for allocation.
	DispatchBatteryFloor = 25

	// FullBattery is the battery percentage at which charging completes.
	FullBattery = 100
)

// Domain errors for drone operations.
var (
	// ErrDroneIsNotConstructed is returned when a Drone bypassed its constructors.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone")
	// ErrDroneUnavailable is returned when dispatching a drone whose status is not available.
	ErrDroneUnavailable = errors.New("drone is not available for assignment")
	// ErrIdentifierIsRequired is returned when registering a drone without a call sign.
	ErrIdentifierIsRequired = errs.NewValueIsRequiredError("identifier")
	// ErrHomeBaseIsRequired is returned when registering a drone without a home base.
	ErrHomeBaseIsRequired = errs.NewValueIsRequiredError("homeBase")
	// ErrMaxPayloadIsInvalid is returned for a non-positive payload capacity.
	ErrMaxPayloadIsInvalid = errs.NewValueIsInvalidError("maximum payload must be a positive number")
)

// Drone is the aggregate root for a registered delivery drone.
//
// Invariants:
//   - identifier and home base are non-empty; current location defaults to
//     the home base
//   - battery level stays within [0,100]
//   - BeginDelivery only succeeds from available; Release returns the drone
//     to available when its order completes
type Drone struct {
	id              kernel.UUID
	identifier      string
	status          Status
	maxPayloadKg    float64
	batteryLevel    int
	homeBase        string
	currentLocation string
	lastMaintenance time.Time

	guard guard.ConstructorGuard
}

// NewDrone registers a drone. An empty currentLocation defaults to homeBase.
func NewDrone(
	id kernel.UUID,
	identifier string,
	status Status,
	maxPayloadKg float64,
	batteryLevel int,
	homeBase string,
	currentLocation string,
	lastMaintenance time.Time,
) (*Drone, error) {
	d := &Drone{
		lastMaintenance: lastMaintenance,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setIdentifier(identifier),
		d.setStatus(status),
		d.setMaxPayloadKg(maxPayloadKg),
		d.setBatteryLevel(batteryLevel),
		d.setHomeBase(homeBase),
	); err != nil {
		return nil, err
	}

	d.currentLocation = strings.TrimSpace(currentLocation)
	if d.currentLocation == "" {
		d.currentLocation = d.homeBase
	}

	return d, nil
}

// RestoreDrone rehydrates a drone from persistence.
func RestoreDrone(
	id kernel.UUID,
	identifier string,
	status Status,
	maxPayloadKg float64,
	batteryLevel int,
	homeBase string,
	currentLocation string,
	lastMaintenance time.Time,
) (*Drone, error) {
	return NewDrone(id, identifier, status, maxPayloadKg, batteryLevel, homeBase, currentLocation, lastMaintenance)
}

// Validate ensures the drone came from a constructor.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares drones by identifier.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone identifier.
func (d *Drone) ID() kernel.UUID { return d.id }

// Identifier returns the human-readable call sign.
func (d *Drone) Identifier() string { return d.identifier }

// Status returns the current operational status.
func (d *Drone) Status() Status { return d.status }

// MaxPayloadKg returns the payload capacity in kilograms.
func (d *Drone) MaxPayloadKg() float64 { return d.maxPayloadKg }

// BatteryLevel returns the battery percentage in [0,100].
func (d *Drone) BatteryLevel() int { return d.batteryLevel }

// HomeBase returns the drone's home base.
func (d *Drone) HomeBase() string { return d.homeBase }

// CurrentLocation returns the drone's last known location.
func (d *Drone) CurrentLocation() string { return d.currentLocation }

// LastMaintenance returns the last maintenance timestamp.
func (d *Drone) LastMaintenance() time.Time { return d.lastMaintenance }

// IsEligibleForDispatch reports whether the allocator may select this drone:
// it must be available with battery at or above DispatchBatteryFloor.
func (d *Drone) IsEligibleForDispatch() bool {
	return d.status == Available && d.batteryLevel >= DispatchBatteryFloor
}

// BeginDelivery flips the drone to delivering. Only available drones may be
// dispatched; anything else is rejected with ErrDroneUnavailable, which also
// makes repeated assignment calls fail instead of silently re-binding.
func (d *Drone) BeginDelivery() error {
	if d.status != Available {
		return ErrDroneUnavailable
	}
	d.status = Delivering
	return nil
}

// Release returns the drone to available when its order leaves enroute.
func (d *Drone) Release() {
	d.status = Available
}

// ChangeStatus applies a manual operator status edit.
func (d *Drone) ChangeStatus(status Status) error {
	return d.setStatus(status)
}

// Recharge adds charge to a charging drone, capping at FullBattery and
// returning the drone to available once full. Drones in any other status are
// left untouched.
func (d *Drone) Recharge(amount int) {
	if d.status != Charging || amount <= 0 {
		return
	}

	d.batteryLevel += amount
	if d.batteryLevel >= FullBattery {
		d.batteryLevel = FullBattery
		d.status = Available
	}
}

// SetIdentifier updates the call sign.
func (d *Drone) SetIdentifier(identifier string) error {
	return d.setIdentifier(identifier)
}

// SetMaxPayloadKg updates the payload capacity.
func (d *Drone) SetMaxPayloadKg(maxPayloadKg float64) error {
	return d.setMaxPayloadKg(maxPayloadKg)
}

// SetBatteryLevel updates the battery percentage.
func (d *Drone) SetBatteryLevel(batteryLevel int) error {
	return d.setBatteryLevel(batteryLevel)
}

// SetHomeBase updates the home base.
func (d *Drone) SetHomeBase(homeBase string) error {
	return d.setHomeBase(homeBase)
}

// SetCurrentLocation updates the last known location.
func (d *Drone) SetCurrentLocation(location string) {
	location = strings.TrimSpace(location)
	if location != "" {
		d.currentLocation = location
	}
}

// SetLastMaintenance updates the maintenance timestamp.
func (d *Drone) SetLastMaintenance(at time.Time) {
	d.lastMaintenance = at
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setIdentifier(identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return ErrIdentifierIsRequired
	}
	d.identifier = identifier
	return nil
}

func (d *Drone) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Drone) setMaxPayloadKg(maxPayloadKg float64) error {
	if maxPayloadKg <= 0 {
		return ErrMaxPayloadIsInvalid
	}
	d.maxPayloadKg = maxPayloadKg
	return nil
}

func (d *Drone) setBatteryLevel(batteryLevel int) error {
	if batteryLevel < 0 || batteryLevel > FullBattery {
		return errs.NewValueIsOutOfRangeError("batteryLevel", batteryLevel, 0, FullBattery)
	}
	d.batteryLevel = batteryLevel
	return nil
}

func (d *Drone) setHomeBase(homeBase string) error {
	homeBase = strings.TrimSpace(homeBase)
	if homeBase == "" {
		return ErrHomeBaseIsRequired
	}
	d.homeBase = homeBase
	return nil
}
