package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRecordReturnScanCommandIsNotConstructed = errors.New(
	"RecordReturnScanCommand must be created via NewRecordReturnScanCommand constructor",
)

// RecordReturnScanCommand represents the intake of one physical return
// receipt. A return can only be recorded against a parcel that was scanned
// outbound before.
type RecordReturnScanCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	receivedBy     *string
	location       *string
	note           *string

	guard guard.ConstructorGuard
}

// NewRecordReturnScanCommand creates a command to record a return receipt.
func NewRecordReturnScanCommand(
	trackingNumber kernel.TrackingNumber,
	receivedBy *string,
	location *string,
	note *string,
) (RecordReturnScanCommand, error) {
	cmd := RecordReturnScanCommand{
		receivedBy: receivedBy,
		location:   location,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingNumber(trackingNumber); err != nil {
		return RecordReturnScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordReturnScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordReturnScanCommandIsNotConstructed)
}

// TrackingNumber returns the scanned tracking number.
func (c RecordReturnScanCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// ReceivedBy returns who accepted the returned parcel, if recorded.
func (c RecordReturnScanCommand) ReceivedBy() *string {
	return c.receivedBy
}

// Location returns where the return was received, if recorded.
func (c RecordReturnScanCommand) Location() *string {
	return c.location
}

// Note returns the free-text note attached to the intake, if any.
func (c RecordReturnScanCommand) Note() *string {
	return c.note
}

func (c *RecordReturnScanCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}
