package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateCarrierAccountCommandIsNotConstructed = errors.New(
	"UpdateCarrierAccountCommand must be created via NewUpdateCarrierAccountCommand constructor",
)

// UpdateCarrierAccountCommand represents a full rewrite of one account's
// label, endpoint, credentials, and enabled flag.
type UpdateCarrierAccountCommand struct { //nolint:recvcheck //using for validation
	accountID  kernel.UUID
	label      string
	baseURL    string
	externalID string
	apiKey     string
	isEnabled  bool

	guard guard.ConstructorGuard
}

// NewUpdateCarrierAccountCommand creates a command to rewrite an account.
func NewUpdateCarrierAccountCommand(
	accountID kernel.UUID,
	label string,
	baseURL string,
	externalID string,
	apiKey string,
	isEnabled bool,
) (UpdateCarrierAccountCommand, error) {
	cmd := UpdateCarrierAccountCommand{
		label:      label,
		baseURL:    baseURL,
		externalID: externalID,
		apiKey:     apiKey,
		isEnabled:  isEnabled,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return UpdateCarrierAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierAccountCommandIsNotConstructed)
}

// AccountID returns the account to rewrite.
func (c UpdateCarrierAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Label returns the new account label.
func (c UpdateCarrierAccountCommand) Label() string {
	return c.label
}

// BaseURL returns the new upstream endpoint.
func (c UpdateCarrierAccountCommand) BaseURL() string {
	return c.baseURL
}

// ExternalID returns the new upstream customer identifier.
func (c UpdateCarrierAccountCommand) ExternalID() string {
	return c.externalID
}

// APIKey returns the new upstream API credential.
func (c UpdateCarrierAccountCommand) APIKey() string {
	return c.apiKey
}

// IsEnabled returns the new enabled flag.
func (c UpdateCarrierAccountCommand) IsEnabled() bool {
	return c.isEnabled
}

func (c *UpdateCarrierAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
