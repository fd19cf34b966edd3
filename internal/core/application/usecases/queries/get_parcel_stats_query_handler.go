package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelStatsQueryHandler aggregates the parcel population for the cron
// stats endpoint.
type GetParcelStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelStatsQueryHandler creates a handler for the stats aggregation.
func NewGetParcelStatsQueryHandler(db *gorm.DB) GetParcelStatsQueryHandler {
	return GetParcelStatsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetParcelStatsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatsQuery,
) (GetParcelStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	resp := GetParcelStatsQueryResponse{
		ByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM parcels
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetParcelStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetParcelStatsQueryResponse{}, err
		}
		resp.ByStatus[status] = count
		resp.TotalParcels += count
	}
	if err = rows.Err(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	carrierRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.name,
			c.sla_pending_days,
			c.sla_lost_days,
			COUNT(p.id) AS parcel_count
		FROM carriers c
		LEFT JOIN parcels p ON p.carrier_id = c.id
		GROUP BY c.name, c.sla_pending_days, c.sla_lost_days
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return GetParcelStatsQueryResponse{}, err
	}
	defer carrierRows.Close()

	for carrierRows.Next() {
		var stats CarrierStats
		if err = carrierRows.Scan(
			&stats.Name, &stats.SlaPendingDays, &stats.SlaLostDays, &stats.ParcelCount); err != nil {
			return GetParcelStatsQueryResponse{}, err
		}
		resp.Carriers = append(resp.Carriers, stats)
	}

	return resp, carrierRows.Err()
}
