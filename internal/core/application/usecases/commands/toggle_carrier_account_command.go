package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrToggleCarrierAccountCommandIsNotConstructed = errors.New(
	"ToggleCarrierAccountCommand must be created via NewToggleCarrierAccountCommand constructor",
)

// ToggleCarrierAccountCommand flips one account's enabled flag, taking it in
// or out of the resolution path without touching its credentials.
type ToggleCarrierAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleCarrierAccountCommand creates a command to flip an account's
// enabled flag.
func NewToggleCarrierAccountCommand(accountID kernel.UUID) (ToggleCarrierAccountCommand, error) {
	cmd := ToggleCarrierAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return ToggleCarrierAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleCarrierAccountCommand) Validate() error {
	return c.guard.Validate(ErrToggleCarrierAccountCommandIsNotConstructed)
}

// AccountID returns the account to toggle.
func (c ToggleCarrierAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c *ToggleCarrierAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
