package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// RecordReturnScanCommandHandler handles return receipt intake: the parcel
// moves to RETURN_RECEIVED, an intake record is appended, and a SCAN_RETURN
// event is logged, all in one transaction.
type RecordReturnScanCommandHandler struct {
	uowFactory ReturnUoWFactory
	now        func() time.Time
}

// NewRecordReturnScanCommandHandler creates a handler for return scans.
func NewRecordReturnScanCommandHandler(uowFactory ReturnUoWFactory) RecordReturnScanCommandHandler {
	return RecordReturnScanCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes one return receipt. The parcel must already exist; a
// return cannot create a parcel, so an unknown tracking number surfaces as
// an ObjectNotFoundError and nothing is written.
func (h *RecordReturnScanCommandHandler) Handle(ctx context.Context, cmd RecordReturnScanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ParcelRepository().GetByTrackingNumberForUpdate(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	prior := aggregate.Status()
	if err = aggregate.RecordReturn(h.now()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	intake, err := parcel.NewReturnIntake(
		kernel.NewUUID(), aggregate.ID(), cmd.ReceivedBy(), cmd.Location(), cmd.Note())
	if err != nil {
		return err
	}

	if err = uow.ReturnIntakeRepository().Add(ctx, intake); err != nil {
		return err
	}

	payload := map[string]any{}
	if cmd.ReceivedBy() != nil {
		payload["receivedBy"] = *cmd.ReceivedBy()
	}
	if cmd.Location() != nil {
		payload["location"] = *cmd.Location()
	}
	if cmd.Note() != nil {
		payload["note"] = *cmd.Note()
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeScanReturn,
		&prior,
		aggregate.Status(),
		parcel.SourceScan,
		nil,
		payload,
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
