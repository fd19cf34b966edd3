package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrBulkUpdateStatusCommandIsNotConstructed = errors.New(
	"BulkUpdateStatusCommand must be created via NewBulkUpdateStatusCommand constructor",
)

// BulkUpdateItem is one row of a bulk status update.
type BulkUpdateItem struct {
	TrackingNumber kernel.TrackingNumber
	Status         parcel.Status
	Note           *string
}

// BulkUpdateStatusCommand represents a batch of independent status updates,
// typically a spreadsheet import. Items are validated up front as a batch;
// per-item execution failures are collected at handling time instead.
type BulkUpdateStatusCommand struct { //nolint:recvcheck //using for validation
	items  []BulkUpdateItem
	userID *string

	guard guard.ConstructorGuard
}

// NewBulkUpdateStatusCommand creates a command for a batch of status updates.
// The batch must be non-empty and every item must carry a well formed
// tracking number and a valid status.
func NewBulkUpdateStatusCommand(items []BulkUpdateItem, userID *string) (BulkUpdateStatusCommand, error) {
	cmd := BulkUpdateStatusCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(items); err != nil {
		return BulkUpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkUpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateStatusCommandIsNotConstructed)
}

// Items returns the batch rows in input order.
func (c BulkUpdateStatusCommand) Items() []BulkUpdateItem {
	return c.items
}

// UserID returns the operator who submitted the batch, if known.
func (c BulkUpdateStatusCommand) UserID() *string {
	return c.userID
}

func (c *BulkUpdateStatusCommand) setItems(items []BulkUpdateItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("updates")
	}

	for _, item := range items {
		if err := item.TrackingNumber.Validate(); err != nil {
			return err
		}
		if err := item.Status.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
