package returnrepo

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormReturnIntakeRepository implements ReturnIntakeRepository using GORM.
// The log is append-only; there is no update or delete.
type GormReturnIntakeRepository struct {
	db *gorm.DB
}

// NewGormReturnIntakeRepository creates a new GORM return intake repository.
func NewGormReturnIntakeRepository(db *gorm.DB) *GormReturnIntakeRepository {
	return &GormReturnIntakeRepository{db: db}
}

// Add appends one return intake record.
func (r *GormReturnIntakeRepository) Add(ctx context.Context, intake *parcel.ReturnIntake) error {
	if err := intake.Validate(); err != nil {
		return err
	}

	dto := fromDomain(intake)
	return r.db.WithContext(ctx).Create(&dto).Error
}
