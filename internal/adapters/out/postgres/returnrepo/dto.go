// Package returnrepo provides data transfer objects and mapping functions
// for the append-only return intake log.
package returnrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ReturnIntakeDTO represents the database structure for persisting return
// receipts. A parcel may accumulate several rows (re-returns).
type ReturnIntakeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ReceivedBy *string
	Location   *string
	Note       *string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for return intake entities.
func (ReturnIntakeDTO) TableName() string {
	return "return_intakes"
}

// fromDomain converts a return intake domain entity to its database
// representation.
func fromDomain(intake *parcel.ReturnIntake) ReturnIntakeDTO {
	return ReturnIntakeDTO{
		ID:         intake.ID().Bytes(),
		ParcelID:   intake.ParcelID().Bytes(),
		ReceivedBy: intake.ReceivedBy(),
		Location:   intake.Location(),
		Note:       intake.Note(),
	}
}
