// Package accountrepo provides data transfer objects and mapping functions
// for carrier API account persistence.
package accountrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting carrier API
// accounts. created_at doubles as the probe order during resolution, so it
// is set once and never updated.
type AccountDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Label      string    `gorm:"not null"`
	BaseURL    string    `gorm:"not null"`
	ExternalID string    `gorm:"not null"`
	APIKey     string    `gorm:"not null"`
	IsEnabled  bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "carrier_accounts"
}

// fromDomain converts an account domain aggregate to its database
// representation.
func fromDomain(aggregate *carrier.Account) AccountDTO {
	return AccountDTO{
		ID:         aggregate.ID().Bytes(),
		CarrierID:  aggregate.CarrierID().Bytes(),
		Label:      aggregate.Label(),
		BaseURL:    aggregate.BaseURL(),
		ExternalID: aggregate.ExternalID(),
		APIKey:     aggregate.APIKey(),
		IsEnabled:  aggregate.IsEnabled(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*carrier.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreAccount(
		id, carrierID, dto.Label, dto.BaseURL, dto.ExternalID, dto.APIKey, dto.IsEnabled)
}
