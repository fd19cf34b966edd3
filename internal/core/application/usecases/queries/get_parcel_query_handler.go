package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler assembles one parcel's full detail from the parcel
// row, the event log, and the return intakes.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail lookups.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the detail lookup. An unknown tracking number surfaces as
// an ObjectNotFoundError.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp, err := h.loadParcel(ctx, query.TrackingNumber().String())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp.Events, err = h.loadEvents(ctx, resp.ID)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp.ReturnIntakes, err = h.loadReturnIntakes(ctx, resp.ID)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	return resp, nil
}

func (h GetParcelQueryHandler) loadParcel(ctx context.Context, trackingNumber string) (GetParcelQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.status,
			p.destination,
			c.name,
			p.outbound_scanned_at,
			p.return_received_at,
			p.delivered_at,
			p.lost_at,
			p.created_at,
			p.updated_at
		FROM parcels p
		LEFT JOIN carriers c ON c.id = p.carrier_id
		WHERE p.tracking_number = ?
	`, trackingNumber).Row()

	var resp GetParcelQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.Status,
		&resp.Destination,
		&resp.CarrierName,
		&resp.OutboundScannedAt,
		&resp.ReturnReceivedAt,
		&resp.DeliveredAt,
		&resp.LostAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return GetParcelQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	resp.ID = parcelID

	return resp, nil
}

func (h GetParcelQueryHandler) loadEvents(ctx context.Context, parcelID kernel.UUID) ([]ParcelEventView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			from_status,
			to_status,
			source,
			user_id,
			payload,
			created_at
		FROM parcel_events
		WHERE parcel_id = ?
		ORDER BY created_at DESC, id DESC
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]ParcelEventView, 0)
	for rows.Next() {
		var view ParcelEventView
		var id uuid.UUID
		var payload []byte
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&view.EventType,
			&view.FromStatus,
			&view.ToStatus,
			&view.Source,
			&view.UserID,
			&payload,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = eventID
		view.CreatedAt = createdAt

		if len(payload) > 0 {
			if err = json.Unmarshal(payload, &view.Payload); err != nil {
				return nil, err
			}
		}

		events = append(events, view)
	}

	return events, rows.Err()
}

func (h GetParcelQueryHandler) loadReturnIntakes(ctx context.Context, parcelID kernel.UUID) ([]ReturnIntakeView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			received_by,
			location,
			note,
			created_at
		FROM return_intakes
		WHERE parcel_id = ?
		ORDER BY created_at DESC, id DESC
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	intakes := make([]ReturnIntakeView, 0)
	for rows.Next() {
		var view ReturnIntakeView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&view.ReceivedBy,
			&view.Location,
			&view.Note,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		intakeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = intakeID

		intakes = append(intakes, view)
	}

	return intakes, rows.Err()
}
