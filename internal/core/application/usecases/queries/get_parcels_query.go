// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// aggregate repositories, and return flat response structs shaped for the
// transport layer.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

// Listing limits. Requests outside the range are clamped, not rejected.
const (
	ParcelListDefaultLimit = 20
	ParcelListMaxLimit     = 100
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery retrieves recent parcels, optionally filtered by status.
type GetParcelsQuery struct {
	status *parcel.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a parcel listing query. A nil status means no
// filter; a non-nil status string must parse to a valid status. The limit is
// clamped to [1, ParcelListMaxLimit], with 0 meaning the default.
func NewGetParcelsQuery(status *string, limit int) (GetParcelsQuery, error) {
	q := GetParcelsQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		parsed, err := parcel.ParseStatus(*status)
		if err != nil {
			return GetParcelsQuery{}, err
		}
		q.status = &parsed
	}

	switch {
	case limit <= 0:
		q.limit = ParcelListDefaultLimit
	case limit > ParcelListMaxLimit:
		q.limit = ParcelListMaxLimit
	default:
		q.limit = limit
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetParcelsQuery) Status() *parcel.Status {
	return q.status
}

// Limit returns the clamped row limit.
func (q GetParcelsQuery) Limit() int {
	return q.limit
}

// GetParcelsQueryResponse is one row of the parcel listing.
type GetParcelsQueryResponse struct {
	ID                kernel.UUID `json:"id"`
	TrackingNumber    string      `json:"trackingNumber"`
	Status            string      `json:"status"`
	Destination       *string     `json:"destination"`
	CarrierName       *string     `json:"carrierName"`
	OutboundScannedAt *time.Time  `json:"outboundScannedAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
