package parcel

import (
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// EventType tags what caused a transition. Free-form by design: the event
// log is an audit trail, not a second state machine.
type EventType string

// Event types written by the core operations.
const (
	EventTypeScanOut      EventType = "SCAN_OUT"
	EventTypeScanReturn   EventType = "SCAN_RETURN"
	EventTypeStatusUpdate EventType = "STATUS_UPDATE"
	EventTypeSlaCheck     EventType = "SLA_CHECK"
)

// Source identifies the kind of actor behind a transition.
type Source string

const (
	// SourceScan marks transitions caused by a physical scan.
	SourceScan Source = "SCAN"
	// SourceManual marks single operator overrides.
	SourceManual Source = "MANUAL"
	// SourceBulkImport marks items of a bulk status update.
	SourceBulkImport Source = "BULK_IMPORT"
	// SourceSystem marks transitions written by the SLA scheduler.
	SourceSystem Source = "SYSTEM"
)

// Validate checks that the source is one of the defined actors.
func (s Source) Validate() error {
	switch s {
	case SourceScan, SourceManual, SourceBulkImport, SourceSystem:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"source", fmt.Errorf("%q is not a valid event source", s))
}

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent factory method.
var ErrEventIsNotConstructed = fmt.Errorf("Event must be created via NewEvent constructor")

// Event is one immutable entry of the append-only parcel event log. Exactly
// one event exists per status mutation, created in the same unit of work as
// the transition itself. FromStatus is nil for the very first transition of a
// tracking number. Payload carries opaque diagnostic context, e.g. which
// carrier and account matched or the SLA day counts behind an escalation.
type Event struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	eventType  EventType
	fromStatus *Status
	toStatus   Status
	source     Source
	userID     *string
	payload    map[string]any

	isConstructed bool
}

// NewEvent creates an event-log entry for one transition.
func NewEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	eventType EventType,
	fromStatus *Status,
	toStatus Status,
	source Source,
	userID *string,
	payload map[string]any,
) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("eventType")
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}

	return &Event{
		id:            id,
		parcelID:      parcelID,
		eventType:     eventType,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		source:        source,
		userID:        userID,
		payload:       payload,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was created through the factory method.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the parcel this event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Type returns the event tag.
func (e *Event) Type() EventType {
	return e.eventType
}

// FromStatus returns the status before the transition, nil on first sight.
func (e *Event) FromStatus() *Status {
	return e.fromStatus
}

// ToStatus returns the status after the transition.
func (e *Event) ToStatus() Status {
	return e.toStatus
}

// EventSource returns the kind of actor behind the transition.
func (e *Event) EventSource() Source {
	return e.source
}

// UserID returns the acting user, nil for system transitions.
func (e *Event) UserID() *string {
	return e.userID
}

// Payload returns the opaque diagnostic context, possibly nil.
func (e *Event) Payload() map[string]any {
	return e.payload
}
