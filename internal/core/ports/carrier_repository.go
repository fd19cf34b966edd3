// Package ports defines the contracts between the domain layer and
// infrastructure: repository interfaces, the unit of work, and the carrier
// lookup API client. These abstractions enable dependency inversion and
// testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
)

// CarrierRepository is the persistence contract for the carrier registry.
// The registry is read through on every resolution call; no caching layer
// sits in front of it, so the latest carrier configuration is always used.
type CarrierRepository interface {
	// Add persists a new carrier. A duplicate name surfaces as a conflict error.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier.
	// A rename colliding with another carrier surfaces as a conflict error.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Delete removes a carrier. Callers must ensure no parcel references it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a carrier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetByName retrieves a carrier by its unique name.
	GetByName(ctx context.Context, name string) (*carrier.Carrier, error)

	// GetAll retrieves every carrier in registry order (creation order),
	// which is the tie-break order used during resolution.
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)
}

// CarrierAccountRepository is the persistence contract for carrier API
// accounts.
type CarrierAccountRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, aggregate *carrier.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *carrier.Account) error

	// Delete removes an account.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Account, error)

	// GetEnabledByCarrier retrieves a carrier's enabled accounts in creation
	// order, the order in which resolution tries them.
	GetEnabledByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*carrier.Account, error)
}
