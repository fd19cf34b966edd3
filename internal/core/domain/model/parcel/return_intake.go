package parcel

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
)

// ErrReturnIntakeIsNotConstructed is returned when a ReturnIntake instance
// was not created through the NewReturnIntake factory method.
var ErrReturnIntakeIsNotConstructed = errors.New(
	"ReturnIntake must be created via NewReturnIntake constructor")

// ReturnIntake records one physical return receipt: who received the parcel,
// where, and any free-text note. The log is append-only and a parcel may
// accumulate several intakes (re-returns).
type ReturnIntake struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	receivedBy *string
	location   *string
	note       *string

	isConstructed bool
}

// NewReturnIntake creates an intake record for a parcel. All descriptive
// fields are optional.
func NewReturnIntake(
	id kernel.UUID,
	parcelID kernel.UUID,
	receivedBy *string,
	location *string,
	note *string,
) (*ReturnIntake, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	return &ReturnIntake{
		id:            id,
		parcelID:      parcelID,
		receivedBy:    receivedBy,
		location:      location,
		note:          note,
		isConstructed: true,
	}, nil
}

// Validate ensures the ReturnIntake was created through the factory method.
func (r *ReturnIntake) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIntakeIsNotConstructed
	}
	return nil
}

// ID returns the intake's unique identifier.
func (r *ReturnIntake) ID() kernel.UUID {
	return r.id
}

// ParcelID returns the parcel this intake belongs to.
func (r *ReturnIntake) ParcelID() kernel.UUID {
	return r.parcelID
}

// ReceivedBy returns who received the return, nil when unrecorded.
func (r *ReturnIntake) ReceivedBy() *string {
	return r.receivedBy
}

// Location returns where the return was received, nil when unrecorded.
func (r *ReturnIntake) Location() *string {
	return r.location
}

// Note returns the free-text note, nil when unrecorded.
func (r *ReturnIntake) Note() *string {
	return r.note
}
