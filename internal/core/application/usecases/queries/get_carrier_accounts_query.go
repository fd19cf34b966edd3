package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCarrierAccountsQueryIsNotConstructed = errors.New(
	"GetCarrierAccountsQuery must be created via NewGetCarrierAccountsQuery constructor",
)

// GetCarrierAccountsQuery retrieves carrier API accounts in creation order,
// optionally filtered to one carrier. API keys are never included in the
// response.
type GetCarrierAccountsQuery struct {
	carrierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierAccountsQuery creates an account listing query. A nil carrier
// ID lists every account.
func NewGetCarrierAccountsQuery(carrierID *kernel.UUID) (GetCarrierAccountsQuery, error) {
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return GetCarrierAccountsQuery{}, err
		}
	}

	return GetCarrierAccountsQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierAccountsQueryIsNotConstructed)
}

// CarrierID returns the optional carrier filter.
func (q GetCarrierAccountsQuery) CarrierID() *kernel.UUID {
	return q.carrierID
}

// GetCarrierAccountsQueryResponse is one account of the listing.
type GetCarrierAccountsQueryResponse struct {
	ID          kernel.UUID `json:"id"`
	CarrierID   kernel.UUID `json:"carrierId"`
	CarrierName string      `json:"carrierName"`
	Label       string      `json:"accountName"`
	BaseURL     string      `json:"baseUrl"`
	ExternalID  string      `json:"externalId"`
	IsEnabled   bool        `json:"isEnabled"`
}
