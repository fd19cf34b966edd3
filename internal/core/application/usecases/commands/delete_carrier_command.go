package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteCarrierCommandIsNotConstructed = errors.New(
	"DeleteCarrierCommand must be created via NewDeleteCarrierCommand constructor",
)

// DeleteCarrierCommand represents a request to remove a carrier from the
// registry. Deletion is blocked while parcels still reference the carrier.
type DeleteCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCarrierCommand creates a command to remove a carrier.
func NewDeleteCarrierCommand(carrierID kernel.UUID) (DeleteCarrierCommand, error) {
	cmd := DeleteCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCarrierID(carrierID); err != nil {
		return DeleteCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarrierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierCommandIsNotConstructed)
}

// CarrierID returns the carrier to remove.
func (c DeleteCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *DeleteCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
