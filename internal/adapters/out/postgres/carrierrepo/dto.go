// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence. The carrier registry is small and read through on
// every resolution, so the table carries no denormalized state beyond the
// rule and SLA columns.
package carrierrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. The name carries a unique index; duplicate names surface as a
// conflict at the repository boundary.
type CarrierDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"uniqueIndex;not null"`
	RuleKind       string    `gorm:"not null"`
	RuleValue      string    `gorm:"not null"`
	SlaPendingDays int       `gorm:"not null"`
	SlaLostDays    int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database
// representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		RuleKind:       aggregate.Rule().Kind().String(),
		RuleValue:      aggregate.Rule().Value(),
		SlaPendingDays: aggregate.Sla().PendingDays(),
		SlaLostDays:    aggregate.Sla().LostDays(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate. The rule
// and SLA are rebuilt through their constructors, so rows that no longer
// satisfy the domain invariants fail to load instead of producing a broken
// aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := carrier.ParseRuleKind(dto.RuleKind)
	if err != nil {
		return nil, err
	}

	rule, err := carrier.NewMatchRule(kind, dto.RuleValue)
	if err != nil {
		return nil, err
	}

	sla, err := carrier.NewSla(dto.SlaPendingDays, dto.SlaLostDays)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, rule, sla)
}
