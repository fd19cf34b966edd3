package kernel

import (
	"strings"
	"unicode"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// TrackingNumberMinLength is the minimum accepted length of a tracking number.
const TrackingNumberMinLength = 3

// ErrTrackingNumberIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingNumber. Tracking numbers must be created
// using the NewTrackingNumber constructor to ensure validity.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber constructor")

// TrackingNumber is the carrier-assigned identifier of a physical parcel and
// the unique key of the parcel lifecycle. It is an immutable value object;
// surrounding whitespace is trimmed at construction and the trimmed value must
// be at least TrackingNumberMinLength characters long.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber("123456789")
//	if err != nil {
//	    // Handle validation error
//	}
//	tn.IsNumeric() // true
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber creates a TrackingNumber from its raw scanned form.
// Returns a validation error when the trimmed value is empty or shorter than
// TrackingNumberMinLength.
func NewTrackingNumber(raw string) (TrackingNumber, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if len(value) < TrackingNumberMinLength {
		return TrackingNumber{}, errs.NewValueIsOutOfRangeError(
			"trackingNumber length", len(value), TrackingNumberMinLength, "unbounded")
	}

	return TrackingNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TrackingNumber was created through the constructor.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}

// String returns the tracking number exactly as it will be persisted.
func (t TrackingNumber) String() string {
	return t.value
}

// Length returns the number of characters in the tracking number.
func (t TrackingNumber) Length() int {
	return len(t.value)
}

// IsNumeric reports whether the tracking number is composed entirely of
// decimal digits. Only numeric tracking numbers are candidates for
// digit-count (LENGTH) carrier rules.
func (t TrackingNumber) IsNumeric() bool {
	if t.value == "" {
		return false
	}
	for _, r := range t.value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}
