package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// CREATED is the implicit initial state for a tracking number never seen
// before. There is no terminal state enforced by the state machine itself:
// any state can be set by a manual override, since the system trusts
// operator intent. The SLA scheduler only escalates parcels that are in
// OUTBOUND_SCANNED or IN_TRANSIT (see IsEscalatable).
//
// Status is a value object that validates parsed values and provides the
// string representations used for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the implicit initial state of a never-scanned parcel.
	StatusCreated

	// StatusOutboundScanned means the parcel has been scanned on its way out.
	StatusOutboundScanned

	// StatusInTransit means the carrier has picked the parcel up.
	StatusInTransit

	// StatusDelivered means the parcel reached its destination.
	StatusDelivered

	// StatusReturnInTransit means the parcel is on its way back.
	StatusReturnInTransit

	// StatusReturnReceived means the physical return has been received.
	StatusReturnReceived

	// StatusPendingTooLong means the pending SLA threshold was exceeded.
	StatusPendingTooLong

	// StatusLost means the lost SLA threshold was exceeded.
	StatusLost

	// StatusFailedDelivery means the carrier reported a failed delivery attempt.
	StatusFailedDelivery
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "UNKNOWN",
		StatusCreated:         "CREATED",
		StatusOutboundScanned: "OUTBOUND_SCANNED",
		StatusInTransit:       "IN_TRANSIT",
		StatusDelivered:       "DELIVERED",
		StatusReturnInTransit: "RETURN_IN_TRANSIT",
		StatusReturnReceived:  "RETURN_RECEIVED",
		StatusPendingTooLong:  "PENDING_TOO_LONG",
		StatusLost:            "LOST",
		StatusFailedDelivery:  "FAILED_DELIVERY",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:         "CREATED",
		StatusOutboundScanned: "OUTBOUND_SCANNED",
		StatusInTransit:       "IN_TRANSIT",
		StatusDelivered:       "DELIVERED",
		StatusReturnInTransit: "RETURN_IN_TRANSIT",
		StatusReturnReceived:  "RETURN_RECEIVED",
		StatusPendingTooLong:  "PENDING_TOO_LONG",
		StatusLost:            "LOST",
		StatusFailedDelivery:  "FAILED_DELIVERY",
	}
}

// ParseStatus converts the wire/storage representation of a status.
// Returns a validation error for anything that is not a defined status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsEscalatable reports whether the SLA scheduler considers the parcel
// active: only OUTBOUND_SCANNED and IN_TRANSIT parcels are swept.
func (s Status) IsEscalatable() bool {
	return s == StatusOutboundScanned || s == StatusInTransit
}
