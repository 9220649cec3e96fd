package commands

import (
	"context"
	"errors"
	"time"

	"foodfast/internal/core/domain/services"
	"foodfast/internal/pkg/errs"
)

var (
	// ErrNoWaitingOrders signals an empty allocation round: no order is
	// parked in awaiting_drone.
	ErrNoWaitingOrders = errors.New("no orders awaiting a drone")

	// ErrNoEligibleDrones signals that an order is waiting but every drone
	// is busy, charging, in maintenance, or below the dispatch battery floor.
	ErrNoEligibleDrones = errors.New("no eligible drones found")
)

// AllocateDroneCommandHandler runs the battery-greedy allocation round used
// by the background sweep. Orders created with automatic assignment disabled
// stay pending and are never picked up here; only awaiting_drone orders are.
type AllocateDroneCommandHandler struct {
	uowFactory DispatchUoWFactory
	allocator  services.DroneAllocator
}

// NewAllocateDroneCommandHandler creates a handler for allocation rounds.
func NewAllocateDroneCommandHandler(uowFactory DispatchUoWFactory) AllocateDroneCommandHandler {
	return AllocateDroneCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewDroneAllocator(),
	}
}

// Handle processes one allocation round. Returns ErrNoWaitingOrders or
// ErrNoEligibleDrones for the two normal idle outcomes so callers can tell
// them apart from real failures.
func (h AllocateDroneCommandHandler) Handle(ctx context.Context, cmd AllocateDroneCommand) error {
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

	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()

	waiting, err := orderRepo.GetFirstAwaitingDrone(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoWaitingOrders
	}
	if err != nil {
		return err
	}

	drones, err := droneRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	selected, err := h.allocator.Allocate(waiting, drones, time.Now().UTC())
	if err != nil {
		return err
	}
	if selected == nil {
		// The order was already awaiting_drone, so there is nothing to
		// persist for this round.
		return ErrNoEligibleDrones
	}

	if err = orderRepo.Update(ctx, waiting); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, selected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
