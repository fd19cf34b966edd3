// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. Parcels are keyed internally by UUID but addressed
// externally by tracking number, which carries a unique index.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Status is stored as its string form so that read-side queries
// can filter on it without knowing the enum encoding.
type ParcelDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string     `gorm:"uniqueIndex;not null"`
	Status           string     `gorm:"index;not null"`
	Destination      *string
	CarrierID        *uuid.UUID `gorm:"type:uuid;index"`
	CarrierAccountID *uuid.UUID `gorm:"type:uuid"`

	OutboundScannedAt *time.Time `gorm:"index"`
	ReturnReceivedAt  *time.Time
	DeliveredAt       *time.Time
	LostAt            *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var carrierID, accountID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}
	if id := aggregate.CarrierAccountID(); id != nil {
		raw := id.Bytes()
		accountID = &raw
	}

	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Status:            aggregate.Status().String(),
		Destination:       aggregate.Destination(),
		CarrierID:         carrierID,
		CarrierAccountID:  accountID,
		OutboundScannedAt: aggregate.OutboundScannedAt(),
		ReturnReceivedAt:  aggregate.ReturnReceivedAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		LostAt:            aggregate.LostAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var carrierID, accountID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}
	if dto.CarrierAccountID != nil {
		aID, accountErr := kernel.UUIDFromBytes((*dto.CarrierAccountID)[:])
		if accountErr != nil {
			return nil, accountErr
		}
		accountID = &aID
	}

	return parcel.RestoreParcel(
		id,
		trackingNumber,
		status,
		dto.Destination,
		carrierID,
		accountID,
		dto.OutboundScannedAt,
		dto.ReturnReceivedAt,
		dto.DeliveredAt,
		dto.LostAt,
	)
}
