package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel by tracking number together with its
// carrier name, event history, and return intakes.
type GetParcelQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for one parcel's full detail.
func NewGetParcelQuery(trackingNumber kernel.TrackingNumber) (GetParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetParcelQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// ParcelEventView is one event-log row of the detail response.
type ParcelEventView struct {
	ID         kernel.UUID    `json:"id"`
	EventType  string         `json:"eventType"`
	FromStatus *string        `json:"fromStatus"`
	ToStatus   string         `json:"toStatus"`
	Source     string         `json:"source"`
	UserID     *string        `json:"userId"`
	Payload    map[string]any `json:"payload"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ReturnIntakeView is one return receipt of the detail response.
type ReturnIntakeView struct {
	ID         kernel.UUID `json:"id"`
	ReceivedBy *string     `json:"receivedBy"`
	Location   *string     `json:"location"`
	Note       *string     `json:"note"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// GetParcelQueryResponse is the full detail of one parcel, events and
// returns newest first.
type GetParcelQueryResponse struct {
	ID                kernel.UUID        `json:"id"`
	TrackingNumber    string             `json:"trackingNumber"`
	Status            string             `json:"status"`
	Destination       *string            `json:"destination"`
	CarrierName       *string            `json:"carrierName"`
	OutboundScannedAt *time.Time         `json:"outboundScannedAt"`
	ReturnReceivedAt  *time.Time         `json:"returnReceivedAt"`
	DeliveredAt       *time.Time         `json:"deliveredAt"`
	LostAt            *time.Time         `json:"lostAt"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	Events            []ParcelEventView  `json:"events"`
	ReturnIntakes     []ReturnIntakeView `json:"returnIntakes"`
}
