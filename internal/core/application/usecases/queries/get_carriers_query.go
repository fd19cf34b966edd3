package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCarriersQueryIsNotConstructed = errors.New(
	"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
)

// GetCarriersQuery retrieves every configured carrier with its linked-parcel
// count, ordered by name.
type GetCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a parameterless carrier listing query.
func NewGetCarriersQuery() GetCarriersQuery {
	return GetCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// GetCarriersQueryResponse is one carrier of the listing.
type GetCarriersQueryResponse struct {
	ID             kernel.UUID `json:"id"`
	Name           string      `json:"name"`
	RuleKind       string      `json:"ruleKind"`
	RuleValue      string      `json:"ruleValue"`
	SlaPendingDays int         `json:"slaPendingDays"`
	SlaLostDays    int         `json:"slaLostDays"`
	ParcelCount    int64       `json:"parcelCount"`
}
