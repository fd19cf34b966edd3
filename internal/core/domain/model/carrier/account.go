package carrier

import (
	"errors"
	"net/url"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// AccountLabelMinLength is the minimum accepted length of an account label.
const AccountLabelMinLength = 2

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory methods.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account holds one set of connection credentials for a carrier's external
// lookup API. A carrier can own several accounts; during resolution the
// enabled ones are tried in creation order until a lookup succeeds.
type Account struct {
	id        kernel.UUID
	carrierID kernel.UUID
	label     string
	baseURL   string
	// externalID is the carrier-side account identifier sent with each lookup.
	externalID string
	apiKey     string
	isEnabled  bool

	isConstructed bool
}

// NewAccount creates an Account bound to a carrier. The base URL must be an
// absolute http(s) URL; external ID and API key are required.
func NewAccount(
	id kernel.UUID,
	carrierID kernel.UUID,
	label string,
	baseURL string,
	externalID string,
	apiKey string,
	isEnabled bool,
) (*Account, error) {
	a := &Account{
		isConstructed: true,
		isEnabled:     isEnabled,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCarrierID(carrierID),
		a.setLabel(label),
		a.setBaseURL(baseURL),
		a.setExternalID(externalID),
		a.setAPIKey(apiKey),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence, running the same
// validations as NewAccount.
func RestoreAccount(
	id kernel.UUID,
	carrierID kernel.UUID,
	label string,
	baseURL string,
	externalID string,
	apiKey string,
	isEnabled bool,
) (*Account, error) {
	return NewAccount(id, carrierID, label, baseURL, externalID, apiKey, isEnabled)
}

// Validate ensures the Account was created through a factory method.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// CarrierID returns the identifier of the owning carrier.
func (a *Account) CarrierID() kernel.UUID {
	return a.carrierID
}

// Label returns the human-readable account label.
func (a *Account) Label() string {
	return a.label
}

// BaseURL returns the lookup API endpoint.
func (a *Account) BaseURL() string {
	return a.baseURL
}

// ExternalID returns the carrier-side account identifier.
func (a *Account) ExternalID() string {
	return a.externalID
}

// APIKey returns the lookup API key.
func (a *Account) APIKey() string {
	return a.apiKey
}

// IsEnabled reports whether the account participates in resolution.
func (a *Account) IsEnabled() bool {
	return a.isEnabled
}

// Toggle flips the enabled flag.
func (a *Account) Toggle() error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.isEnabled = !a.isEnabled
	return nil
}

// Update replaces the account's mutable fields, re-running all construction
// invariants. Identifier and owning carrier never change.
func (a *Account) Update(label, baseURL, externalID, apiKey string, isEnabled bool) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		a.setLabel(label),
		a.setBaseURL(baseURL),
		a.setExternalID(externalID),
		a.setAPIKey(apiKey),
	); err != nil {
		return err
	}

	a.isEnabled = isEnabled
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierId", err)
	}
	a.carrierID = carrierID
	return nil
}

func (a *Account) setLabel(label string) error {
	if len(label) < AccountLabelMinLength {
		return errs.NewValueIsOutOfRangeError("accountName length", len(label), AccountLabelMinLength, "unbounded")
	}
	a.label = label
	return nil
}

func (a *Account) setBaseURL(baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return errs.NewValueIsInvalidError("baseUrl")
	}
	a.baseURL = baseURL
	return nil
}

func (a *Account) setExternalID(externalID string) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("externalId")
	}
	a.externalID = externalID
	return nil
}

func (a *Account) setAPIKey(apiKey string) error {
	if apiKey == "" {
		return errs.NewValueIsRequiredError("apiKey")
	}
	a.apiKey = apiKey
	return nil
}
