// Package dronerepo maps drone aggregates onto the drones table.
package dronerepo

import (
	"time"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO is the database row for a drone. Seq preserves registration
// order, which the allocator's tie-break depends on.
type DroneDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq             int64     `gorm:"autoIncrement;uniqueIndex"`
	Identifier      string    `gorm:"uniqueIndex"`
	Status          string    `gorm:"index"`
	MaxPayloadKg    float64
	BatteryLevel    int
	HomeBase        string
	CurrentLocation string
	LastMaintenance time.Time
}

// TableName overrides GORM's default naming.
func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(aggregate *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:              aggregate.ID().Bytes(),
		Identifier:      aggregate.Identifier(),
		Status:          aggregate.Status().String(),
		MaxPayloadKg:    aggregate.MaxPayloadKg(),
		BatteryLevel:    aggregate.BatteryLevel(),
		HomeBase:        aggregate.HomeBase(),
		CurrentLocation: aggregate.CurrentLocation(),
		LastMaintenance: aggregate.LastMaintenance(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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
