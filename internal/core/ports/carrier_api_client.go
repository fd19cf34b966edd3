package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
)

// CarrierAPIClient probes an upstream carrier API with a tracking number
// through one of the carrier's configured accounts.
type CarrierAPIClient interface {
	// Lookup asks the account's upstream endpoint whether it knows the
	// tracking number. The returned error is reserved for programming
	// mistakes (nil account); upstream failures come back as a result
	// with Success=false.
	Lookup(ctx context.Context, account *carrier.Account, trackingNumber kernel.TrackingNumber) (carrier.LookupResult, error)
}
