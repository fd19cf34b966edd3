package eventrepo

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormEventRepository implements ParcelEventRepository using GORM.
// The log is append-only; there is no update or delete.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends one event-log entry.
func (r *GormEventRepository) Add(ctx context.Context, event *parcel.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(event)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
