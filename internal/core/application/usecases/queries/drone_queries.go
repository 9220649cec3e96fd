package queries

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/ports"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	ErrGetAllDronesQueryIsNotConstructed = errors.New(
		"GetAllDronesQuery must be created via NewGetAllDronesQuery constructor")
	ErrGetDroneQueryIsNotConstructed = errors.New(
		"GetDroneQuery must be created via NewGetDroneQuery constructor")
)

// GetAllDronesQuery retrieves the fleet in registration order.
type GetAllDronesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDronesQuery creates a query for the whole fleet.
func NewGetAllDronesQuery() GetAllDronesQuery {
	return GetAllDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDronesQueryIsNotConstructed)
}

// GetDroneQuery retrieves a single drone by its identifier.
type GetDroneQuery struct {
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDroneQuery creates a query for one drone.
func NewGetDroneQuery(droneID kernel.UUID) (GetDroneQuery, error) {
	if err := droneID.Validate(); err != nil {
		return GetDroneQuery{}, errs.NewValueIsInvalidErrorWithCause("GetDroneQuery", err)
	}

	return GetDroneQuery{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

// DroneQueryHandler serves fleet reads.
type DroneQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewDroneQueryHandler creates a handler for drone queries.
func NewDroneQueryHandler(uowFactory ports.UnitOfWorkFactory) DroneQueryHandler {
	return DroneQueryHandler{uowFactory: uowFactory}
}

// HandleGetAll returns every drone in registration order.
func (h DroneQueryHandler) HandleGetAll(ctx context.Context, query GetAllDronesQuery) ([]*drone.Drone, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DroneRepository().GetAll(ctx)
}

// HandleGet returns the drone or errs.ErrObjectNotFound.
func (h DroneQueryHandler) HandleGet(ctx context.Context, query GetDroneQuery) (*drone.Drone, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DroneRepository().Get(ctx, query.droneID)
}
