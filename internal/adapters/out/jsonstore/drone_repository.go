package jsonstore

import (
	"context"
	"time"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
)

type droneDTO struct {
	ID              string    `json:"id"`
	Identifier      string    `json:"identifier"`
	Status          string    `json:"status"`
	MaxPayloadKg    float64   `json:"maxPayloadKg"`
	BatteryLevel    int       `json:"batteryLevel"`
	HomeBase        string    `json:"homeBase"`
	CurrentLocation string    `json:"currentLocation"`
	LastMaintenance time.Time `json:"lastMaintenance"`
}

func droneFromDomain(aggregate *drone.Drone) droneDTO {
	return droneDTO{
		ID:              aggregate.ID().String(),
		Identifier:      aggregate.Identifier(),
		Status:          aggregate.Status().String(),
		MaxPayloadKg:    aggregate.MaxPayloadKg(),
		BatteryLevel:    aggregate.BatteryLevel(),
		HomeBase:        aggregate.HomeBase(),
		CurrentLocation: aggregate.CurrentLocation(),
		LastMaintenance: aggregate.LastMaintenance(),
	}
}

func droneToDomain(dto droneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := drone.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(
		id, dto.Identifier, status,
		dto.MaxPayloadKg, dto.BatteryLevel,
		dto.HomeBase, dto.CurrentLocation, dto.LastMaintenance,
	)
}

// FileDroneRepository implements ports.DroneRepository over the staged drone
// collection. Slice order is registration order, which the allocator's
// tie-break relies on.
type FileDroneRepository struct {
	uow *FileUnitOfWork
}

// Add appends a new drone to the staged collection.
func (r *FileDroneRepository) Add(_ context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for _, dto := range r.uow.drones {
		if dto.ID == aggregate.ID().String() {
			return errs.NewValueIsInvalidError("id")
		}
	}

	r.uow.drones = append(r.uow.drones, droneFromDomain(aggregate))
	r.uow.dirty[dronesFile] = true
	return nil
}

// Update replaces the staged record with the aggregate's current state.
func (r *FileDroneRepository) Update(_ context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.drones {
		if dto.ID == aggregate.ID().String() {
			r.uow.drones[i] = droneFromDomain(aggregate)
			r.uow.dirty[dronesFile] = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("drone", aggregate.ID())
}

// Get retrieves a drone by ID.
func (r *FileDroneRepository) Get(_ context.Context, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.drones {
		if dto.ID == id.String() {
			return droneToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("drone", id)
}

// GetAll retrieves every drone in registration order.
func (r *FileDroneRepository) GetAll(_ context.Context) ([]*drone.Drone, error) {
	drones := make([]*drone.Drone, 0, len(r.uow.drones))
	for _, dto := range r.uow.drones {
		aggregate, err := droneToDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, aggregate)
	}
	return drones, nil
}
