package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteCarrierAccountCommandIsNotConstructed = errors.New(
	"DeleteCarrierAccountCommand must be created via NewDeleteCarrierAccountCommand constructor",
)

// DeleteCarrierAccountCommand represents a request to remove one API account.
type DeleteCarrierAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCarrierAccountCommand creates a command to remove an account.
func NewDeleteCarrierAccountCommand(accountID kernel.UUID) (DeleteCarrierAccountCommand, error) {
	cmd := DeleteCarrierAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return DeleteCarrierAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarrierAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierAccountCommandIsNotConstructed)
}

// AccountID returns the account to remove.
func (c DeleteCarrierAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c *DeleteCarrierAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
