package parcelrepo

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database. A duplicate tracking number comes
// back as a conflict error.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"parcel "+aggregate.TrackingNumber().String()+" already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getByID(ctx, r.db, id)
}

// GetForUpdate retrieves a parcel by ID, row-locked for the remainder of the
// surrounding transaction.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetByTrackingNumber retrieves a parcel by its unique tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}
	return r.getByTrackingNumber(ctx, r.db, trackingNumber)
}

// GetByTrackingNumberForUpdate retrieves a parcel by tracking number,
// row-locked for the remainder of the surrounding transaction.
func (r *GormParcelRepository) GetByTrackingNumberForUpdate(
	ctx context.Context, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}
	return r.getByTrackingNumber(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), trackingNumber)
}

// GetEscalatable retrieves parcels in an active outbound status whose first
// scan is older than the cutoff, oldest scan first.
func (r *GormParcelRepository) GetEscalatable(
	ctx context.Context, scannedBefore time.Time,
) ([]*parcel.Parcel, error) {
	statuses := []string{
		parcel.StatusOutboundScanned.String(),
		parcel.StatusInTransit.String(),
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("status IN ? AND outbound_scanned_at < ?", statuses, scannedBefore).
		Order("outbound_scanned_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// CountByCarrier returns how many parcels reference the carrier.
func (r *GormParcelRepository) CountByCarrier(ctx context.Context, carrierID kernel.UUID) (int64, error) {
	if err := carrierID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("carrier_id = ?", carrierID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormParcelRepository) getByID(ctx context.Context, db *gorm.DB, id kernel.UUID) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) getByTrackingNumber(
	ctx context.Context, db *gorm.DB, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
