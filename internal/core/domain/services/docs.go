// Package services contains stateless domain services that coordinate
// multiple aggregates. The only service today is DroneAllocator, which
// selects the drone to carry a given order and binds the pair.
package services
