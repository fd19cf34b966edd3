package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through the NewParcel or RestoreParcel factory methods.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate root for one physical parcel, keyed by its globally
// unique tracking number. It carries the current lifecycle status, the
// resolved carrier/account (if any), an optional destination, and the
// timestamps of the interesting transitions.
//
// A parcel is created on first outbound scan (or first reference) and never
// deleted. Every status mutation goes through one of the methods below so the
// side-effect timestamps stay consistent; the caller is responsible for
// appending exactly one ParcelEvent per mutation in the same unit of work.
type Parcel struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber
	status         Status
	destination    *string

	carrierID        *kernel.UUID
	carrierAccountID *kernel.UUID

	outboundScannedAt *time.Time
	returnReceivedAt  *time.Time
	deliveredAt       *time.Time
	lostAt            *time.Time

	isConstructed bool
}

// NewParcel creates a parcel in the implicit initial CREATED status.
// Scan and status methods advance it from there.
func NewParcel(id kernel.UUID, trackingNumber kernel.TrackingNumber) (*Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	return &Parcel{
		id:             id,
		trackingNumber: trackingNumber,
		status:         StatusCreated,
		isConstructed:  true,
	}, nil
}

// RestoreParcel reconstructs a parcel from persistence.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	status Status,
	destination *string,
	carrierID *kernel.UUID,
	carrierAccountID *kernel.UUID,
	outboundScannedAt *time.Time,
	returnReceivedAt *time.Time,
	deliveredAt *time.Time,
	lostAt *time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, trackingNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.destination = destination
	p.carrierID = carrierID
	p.carrierAccountID = carrierAccountID
	p.outboundScannedAt = outboundScannedAt
	p.returnReceivedAt = returnReceivedAt
	p.deliveredAt = deliveredAt
	p.lostAt = lostAt
	return p, nil
}

// Validate ensures the Parcel was created through a factory method.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the parcel's unique tracking number.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Destination returns the delivery destination, nil when unknown.
func (p *Parcel) Destination() *string {
	return p.destination
}

// CarrierID returns the resolved carrier, nil when resolution never matched.
func (p *Parcel) CarrierID() *kernel.UUID {
	return p.carrierID
}

// CarrierAccountID returns the account whose API lookup identified the
// carrier, nil when the parcel was matched without a live lookup.
func (p *Parcel) CarrierAccountID() *kernel.UUID {
	return p.carrierAccountID
}

// OutboundScannedAt returns the timestamp of the first outbound scan.
func (p *Parcel) OutboundScannedAt() *time.Time {
	return p.outboundScannedAt
}

// ReturnReceivedAt returns the timestamp of the latest return receipt.
func (p *Parcel) ReturnReceivedAt() *time.Time {
	return p.returnReceivedAt
}

// DeliveredAt returns when the parcel was marked delivered.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// LostAt returns when the parcel was marked lost.
func (p *Parcel) LostAt() *time.Time {
	return p.lostAt
}

// RecordOutboundScan applies one physical outbound scan. The status is reset
// to OUTBOUND_SCANNED unconditionally, even from a later state: a re-scan
// means the parcel is outbound again. The timestamp of the first scan is
// preserved on repeat scans, and carrier, account, and destination are
// only filled when previously unknown.
func (p *Parcel) RecordOutboundScan(
	now time.Time,
	destination *string,
	carrierID *kernel.UUID,
	carrierAccountID *kernel.UUID,
) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.status = StatusOutboundScanned
	if p.outboundScannedAt == nil {
		p.outboundScannedAt = &now
	}
	if p.destination == nil {
		p.destination = destination
	}
	if p.carrierID == nil {
		p.carrierID = carrierID
	}
	if p.carrierAccountID == nil {
		p.carrierAccountID = carrierAccountID
	}
	return nil
}

// RecordReturn applies a physical return receipt: status RETURN_RECEIVED and
// a fresh returnReceivedAt. Re-returns overwrite the timestamp.
func (p *Parcel) RecordReturn(now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.status = StatusReturnReceived
	p.returnReceivedAt = &now
	return nil
}

// ChangeStatus sets an explicit target status (operator override, bulk
// update, or SLA escalation). Any valid status is accepted from any state.
// DELIVERED stamps deliveredAt and LOST stamps lostAt as side effects.
func (p *Parcel) ChangeStatus(newStatus Status, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	p.status = newStatus
	switch newStatus {
	case StatusDelivered:
		p.deliveredAt = &now
	case StatusLost:
		p.lostAt = &now
	case StatusUnknown, StatusCreated, StatusOutboundScanned, StatusInTransit,
		StatusReturnInTransit, StatusReturnReceived, StatusPendingTooLong,
		StatusFailedDelivery:
	}
	return nil
}

// DaysSinceOutboundScan returns the whole days elapsed since the first
// outbound scan, truncated. ok is false when the parcel was never scanned.
func (p *Parcel) DaysSinceOutboundScan(now time.Time) (days int, ok bool) {
	if p.outboundScannedAt == nil {
		return 0, false
	}
	elapsed := now.Sub(*p.outboundScannedAt)
	if elapsed < 0 {
		return 0, true
	}
	return int(elapsed.Hours() / 24), true
}
