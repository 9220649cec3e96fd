package services

import (
	"time"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/order"
)

// DroneAllocator is the domain service that picks which drone services an
// order. Selection is battery-greedy: among available drones at or above the
// dispatch battery floor, the one with the highest charge wins, because the
// dominant operational risk is a drone dying mid-flight. Proximity is
// deliberately not modeled.
//
// An empty eligible set is not a failure: the order is parked in
// awaiting_drone and the allocation sweep retries later.
type DroneAllocator struct{}

// NewDroneAllocator creates a DroneAllocator.
func NewDroneAllocator() DroneAllocator {
	return DroneAllocator{}
}

// Allocate selects the best eligible drone for the order and binds the pair:
// the drone moves to delivering, the order to enroute with its dispatch time
// stamped. When no drone is eligible the order moves to awaiting_drone and
// the returned drone is nil.
//
// Callers must pass drones in registration order; ties on battery level keep
// the earliest-registered drone, making selection deterministic.
func (a DroneAllocator) Allocate(o *order.Order, drones []*drone.Drone, at time.Time) (*drone.Drone, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := a.selectBest(drones)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, o.MarkAwaitingDrone()
	}

	if err = best.BeginDelivery(); err != nil {
		return nil, err
	}
	if err = o.AssignDrone(best.ID(), at); err != nil {
		return nil, err
	}

	return best, nil
}

// selectBest scans the drones in order, keeping the first one with the
// strictly highest battery level among the eligible set.
func (a DroneAllocator) selectBest(drones []*drone.Drone) (*drone.Drone, error) {
	var best *drone.Drone
	for _, d := range drones {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.IsEligibleForDispatch() {
			continue
		}
		if best == nil || d.BatteryLevel() > best.BatteryLevel() {
			best = d
		}
	}
	return best, nil
}
