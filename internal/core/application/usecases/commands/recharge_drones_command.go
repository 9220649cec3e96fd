package commands

import (
	"errors"

	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var ErrRechargeDronesCommandIsNotConstructed = errors.New(
	"RechargeDronesCommand must be created via NewRechargeDronesCommand constructor")

// RechargeDronesCommand is a request to advance charging for the whole fleet
// by a fixed battery increment.
type RechargeDronesCommand struct {
	increment int

	guard guard.ConstructorGuard
}

// NewRechargeDronesCommand creates a command to recharge charging drones.
func NewRechargeDronesCommand(increment int) (RechargeDronesCommand, error) {
	if increment <= 0 {
		return RechargeDronesCommand{}, errs.NewValueIsInvalidError("increment")
	}

	return RechargeDronesCommand{
		increment: increment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RechargeDronesCommand) Validate() error {
	return c.guard.Validate(ErrRechargeDronesCommandIsNotConstructed)
}

// Increment returns the battery percentage added per round.
func (c RechargeDronesCommand) Increment() int {
	return c.increment
}
