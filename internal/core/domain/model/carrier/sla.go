package carrier

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	// SlaMinDays is the smallest configurable SLA threshold.
	SlaMinDays = 1
	// SlaMaxDays is the largest configurable SLA threshold.
	SlaMaxDays = 365
)

// ErrSlaIsNotConstructed is returned when attempting to use an improperly
// initialized Sla.
var ErrSlaIsNotConstructed = errs.NewValueIsRequiredError(
	"SLA must be created via NewSla constructor")

// Sla holds a carrier's two escalation thresholds, in days counted from the
// outbound scan: after PendingDays a parcel is considered pending too long,
// after LostDays it is considered lost. The ordering PendingDays < LostDays
// is enforced at construction, so every persisted carrier satisfies it.
type Sla struct { //nolint:recvcheck //using for validation
	pendingDays int
	lostDays    int

	guard guard.ConstructorGuard
}

// NewSla creates the threshold pair. Both values must be within
// [SlaMinDays, SlaMaxDays] and lostDays must be strictly greater than
// pendingDays.
func NewSla(pendingDays, lostDays int) (Sla, error) {
	if pendingDays < SlaMinDays || pendingDays > SlaMaxDays {
		return Sla{}, errs.NewValueIsOutOfRangeError("slaPendingDays", pendingDays, SlaMinDays, SlaMaxDays)
	}
	if lostDays < SlaMinDays || lostDays > SlaMaxDays {
		return Sla{}, errs.NewValueIsOutOfRangeError("slaLostDays", lostDays, SlaMinDays, SlaMaxDays)
	}
	if lostDays <= pendingDays {
		return Sla{}, errs.NewConflictErrorWithCause(
			"SLA lost days must be greater than SLA pending days",
			fmt.Errorf("pending=%d lost=%d", pendingDays, lostDays))
	}

	return Sla{
		pendingDays: pendingDays,
		lostDays:    lostDays,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Sla was created through the constructor.
func (s Sla) Validate() error {
	return s.guard.Validate(ErrSlaIsNotConstructed)
}

// PendingDays returns the pending-too-long threshold.
func (s Sla) PendingDays() int {
	return s.pendingDays
}

// LostDays returns the lost threshold.
func (s Sla) LostDays() int {
	return s.lostDays
}
