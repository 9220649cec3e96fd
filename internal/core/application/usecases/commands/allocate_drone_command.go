package commands

import (
	"errors"

	"foodfast/internal/pkg/guard"
)

var ErrAllocateDroneCommandIsNotConstructed = errors.New(
	"AllocateDroneCommand must be created via NewAllocateDroneCommand constructor")

// AllocateDroneCommand is a request to run one round of automatic allocation:
// pick the oldest order waiting for a drone and try to dispatch the best
// eligible drone to it. It carries no parameters; the command exists so the
// background sweep goes through the same validated path as every other write.
type AllocateDroneCommand struct {
	guard guard.ConstructorGuard
}

// NewAllocateDroneCommand creates a command for one allocation round.
func NewAllocateDroneCommand() AllocateDroneCommand {
	return AllocateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AllocateDroneCommand) Validate() error {
	return c.guard.Validate(ErrAllocateDroneCommandIsNotConstructed)
}
