package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarriersQueryHandler lists the carrier registry with per-carrier parcel
// counts.
type GetCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarriersQueryHandler creates a handler for carrier listings.
func NewGetCarriersQueryHandler(db *gorm.DB) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetCarriersQuery,
) ([]GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.rule_kind,
			c.rule_value,
			c.sla_pending_days,
			c.sla_lost_days,
			COUNT(p.id) AS parcel_count
		FROM carriers c
		LEFT JOIN parcels p ON p.carrier_id = c.id
		GROUP BY c.id, c.name, c.rule_kind, c.rule_value, c.sla_pending_days, c.sla_lost_days
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]GetCarriersQueryResponse, 0)
	for rows.Next() {
		var resp GetCarriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.RuleKind,
			&resp.RuleValue,
			&resp.SlaPendingDays,
			&resp.SlaLostDays,
			&resp.ParcelCount,
		)
		if err != nil {
			return nil, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = carrierID

		carriers = append(carriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
