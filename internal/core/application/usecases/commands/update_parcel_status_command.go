package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a manual operator override of one
// parcel's status. Any valid target status is accepted; the system trusts
// operator intent.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status
	note     *string
	userID   *string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command for a manual status change.
// Validates the parcel ID and the target status.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	note *string,
	userID *string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		note:   note,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Note returns the optional operator note.
func (c UpdateParcelStatusCommand) Note() *string {
	return c.note
}

// UserID returns the operator performing the override, if known.
func (c UpdateParcelStatusCommand) UserID() *string {
	return c.userID
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
