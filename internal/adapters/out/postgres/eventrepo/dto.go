// Package eventrepo provides data transfer objects and mapping functions for
// the append-only parcel event log. Events are write-once; reads go through
// the query side, so the package only maps from domain to storage.
package eventrepo

import (
	"encoding/json"
	"time"

	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting parcel events.
// The payload is stored as jsonb so read-side queries can return it verbatim.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index;not null"`
	EventType  string    `gorm:"not null"`
	FromStatus *string
	ToStatus   string `gorm:"not null"`
	Source     string `gorm:"not null"`
	UserID     *string
	Payload    []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for event entities.
func (EventDTO) TableName() string {
	return "parcel_events"
}

// fromDomain converts an event domain entity to its database representation.
func fromDomain(event *parcel.Event) (EventDTO, error) {
	var fromStatus *string
	if from := event.FromStatus(); from != nil {
		s := from.String()
		fromStatus = &s
	}

	var payload []byte
	if event.Payload() != nil {
		raw, err := json.Marshal(event.Payload())
		if err != nil {
			return EventDTO{}, err
		}
		payload = raw
	}

	return EventDTO{
		ID:         event.ID().Bytes(),
		ParcelID:   event.ParcelID().Bytes(),
		EventType:  string(event.Type()),
		FromStatus: fromStatus,
		ToStatus:   event.ToStatus().String(),
		Source:     string(event.EventSource()),
		UserID:     event.UserID(),
		Payload:    payload,
	}, nil
}
