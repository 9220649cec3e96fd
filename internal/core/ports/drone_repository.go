package ports

import (
	"context"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
)

// DroneRepository persists Drone aggregates. GetAll must return drones in
// registration order: the allocator's tie-break depends on it.
type DroneRepository interface {
	// Add registers a new drone.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update saves an existing drone.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone by ID, returning errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetAll retrieves every drone in registration order.
	GetAll(ctx context.Context) ([]*drone.Drone, error)
}
