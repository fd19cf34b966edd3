package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateCarrierAccountCommandIsNotConstructed = errors.New(
	"CreateCarrierAccountCommand must be created via NewCreateCarrierAccountCommand constructor",
)

// CreateCarrierAccountCommand represents a request to attach an API account
// to a carrier. Credential validation happens in the Account constructor at
// handling time; the command only checks identifiers.
type CreateCarrierAccountCommand struct { //nolint:recvcheck //using for validation
	accountID  kernel.UUID
	carrierID  kernel.UUID
	label      string
	baseURL    string
	externalID string
	apiKey     string
	isEnabled  bool

	guard guard.ConstructorGuard
}

// NewCreateCarrierAccountCommand creates a command to attach an account.
func NewCreateCarrierAccountCommand(
	accountID kernel.UUID,
	carrierID kernel.UUID,
	label string,
	baseURL string,
	externalID string,
	apiKey string,
	isEnabled bool,
) (CreateCarrierAccountCommand, error) {
	cmd := CreateCarrierAccountCommand{
		label:      label,
		baseURL:    baseURL,
		externalID: externalID,
		apiKey:     apiKey,
		isEnabled:  isEnabled,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return CreateCarrierAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c CreateCarrierAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// CarrierID returns the carrier the account belongs to.
func (c CreateCarrierAccountCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Label returns the human readable account label.
func (c CreateCarrierAccountCommand) Label() string {
	return c.label
}

// BaseURL returns the upstream endpoint of the account.
func (c CreateCarrierAccountCommand) BaseURL() string {
	return c.baseURL
}

// ExternalID returns the upstream customer identifier.
func (c CreateCarrierAccountCommand) ExternalID() string {
	return c.externalID
}

// APIKey returns the upstream API credential.
func (c CreateCarrierAccountCommand) APIKey() string {
	return c.apiKey
}

// IsEnabled returns whether the account takes part in resolution.
func (c CreateCarrierAccountCommand) IsEnabled() bool {
	return c.isEnabled
}

func (c *CreateCarrierAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateCarrierAccountCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
