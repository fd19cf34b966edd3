package queries

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler lists recent parcels, newest update first, with the
// owning carrier's name joined in.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listings.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			p.id,
			p.tracking_number,
			p.status,
			p.destination,
			c.name,
			p.outbound_scanned_at,
			p.updated_at
		FROM parcels p
		LEFT JOIN carriers c ON c.id = p.carrier_id
	`
	args := make([]any, 0, 2)
	if query.Status() != nil {
		sql += ` WHERE p.status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY p.updated_at DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetParcelsQueryResponse, 0)
	for rows.Next() {
		var resp GetParcelsQueryResponse
		var id uuid.UUID
		var scannedAt *time.Time

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&resp.Status,
			&resp.Destination,
			&resp.CarrierName,
			&scannedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.OutboundScannedAt = scannedAt
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
