package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelStatsQueryIsNotConstructed = errors.New(
	"GetParcelStatsQuery must be created via NewGetParcelStatsQuery constructor",
)

// GetParcelStatsQuery retrieves the reporting aggregation: parcel counts per
// status plus per-carrier volume and SLA configuration.
type GetParcelStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelStatsQuery creates a parameterless stats query.
func NewGetParcelStatsQuery() GetParcelStatsQuery {
	return GetParcelStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetParcelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatsQueryIsNotConstructed)
}

// CarrierStats is the per-carrier slice of the stats response.
type CarrierStats struct {
	Name           string `json:"name"`
	SlaPendingDays int    `json:"slaPendingDays"`
	SlaLostDays    int    `json:"slaLostDays"`
	ParcelCount    int64  `json:"parcelCount"`
}

// GetParcelStatsQueryResponse aggregates the parcel population.
type GetParcelStatsQueryResponse struct {
	TotalParcels int64            `json:"totalParcels"`
	ByStatus     map[string]int64 `json:"byStatus"`
	Carriers     []CarrierStats   `json:"carriers"`
}
