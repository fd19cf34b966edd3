package ports

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository is the persistence contract for the parcel lifecycle
// store: one row per tracking number, created on first sight and never
// deleted.
type ParcelRepository interface {
	// Add persists a new parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate retrieves a parcel by identifier, row-locked for the
	// remainder of the surrounding transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its unique tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetByTrackingNumberForUpdate retrieves a parcel by tracking number,
	// row-locked for the remainder of the surrounding transaction. This is
	// the primitive behind atomic read-modify-write on scans, status
	// updates, and escalation; it must be called inside a unit of work.
	GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetEscalatable retrieves parcels the SLA sweep should look at:
	// status OUTBOUND_SCANNED or IN_TRANSIT with an outbound scan older
	// than the given cutoff, oldest scan first.
	GetEscalatable(ctx context.Context, scannedBefore time.Time) ([]*parcel.Parcel, error)

	// CountByCarrier returns how many parcels reference the carrier.
	// Used to block carrier deletion while parcels are attached.
	CountByCarrier(ctx context.Context, carrierID kernel.UUID) (int64, error)
}

// ParcelEventRepository is the append-only contract for the event log.
// Events are immutable; there is deliberately no update or delete.
type ParcelEventRepository interface {
	// Add appends one event-log entry.
	Add(ctx context.Context, event *parcel.Event) error
}

// ReturnIntakeRepository is the append-only contract for return receipts.
type ReturnIntakeRepository interface {
	// Add appends one return intake record.
	Add(ctx context.Context, intake *parcel.ReturnIntake) error
}
