package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrRunSlaSweepCommandIsNotConstructed = errors.New(
	"RunSlaSweepCommand must be created via NewRunSlaSweepCommand constructor",
)

// RunSlaSweepCommand triggers one pass of the SLA escalation sweep over all
// active parcels. The sweep is idempotent: re-running it with no intervening
// changes produces no additional writes.
type RunSlaSweepCommand struct {
	guard guard.ConstructorGuard
}

// NewRunSlaSweepCommand creates a command to trigger one escalation sweep.
// This is a parameterless command that processes all escalatable parcels.
func NewRunSlaSweepCommand() RunSlaSweepCommand {
	return RunSlaSweepCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RunSlaSweepCommand) Validate() error {
	return c.guard.Validate(ErrRunSlaSweepCommandIsNotConstructed)
}
