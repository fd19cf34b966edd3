package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRecordOutboundScanCommandIsNotConstructed = errors.New(
	"RecordOutboundScanCommand must be created via NewRecordOutboundScanCommand constructor",
)

// RecordOutboundScanCommand represents the intake of one physical outbound
// scan. Destination and user are optional; the tracking number alone is
// enough to create or advance a parcel.
type RecordOutboundScanCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	destination    *string
	userID         *string

	guard guard.ConstructorGuard
}

// NewRecordOutboundScanCommand creates a command to record an outbound scan.
// Validates that the tracking number is well formed.
func NewRecordOutboundScanCommand(
	trackingNumber kernel.TrackingNumber,
	destination *string,
	userID *string,
) (RecordOutboundScanCommand, error) {
	cmd := RecordOutboundScanCommand{
		destination: destination,
		userID:      userID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingNumber(trackingNumber); err != nil {
		return RecordOutboundScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordOutboundScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordOutboundScanCommandIsNotConstructed)
}

// TrackingNumber returns the scanned tracking number.
func (c RecordOutboundScanCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Destination returns the explicitly supplied destination, if any.
func (c RecordOutboundScanCommand) Destination() *string {
	return c.destination
}

// UserID returns the operator who performed the scan, if known.
func (c RecordOutboundScanCommand) UserID() *string {
	return c.userID
}

func (c *RecordOutboundScanCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}
