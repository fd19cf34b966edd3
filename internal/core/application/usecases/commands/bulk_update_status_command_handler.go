package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// BulkUpdateSummary counts the outcome of a batch.
type BulkUpdateSummary struct {
	Total   int
	Success int
	Failed  int
}

// BulkUpdateFailure names one rejected batch row and why it was rejected.
type BulkUpdateFailure struct {
	TrackingNumber string
	Reason         string
}

// BulkUpdateStatusResult partitions a batch into applied and rejected rows.
type BulkUpdateStatusResult struct {
	Summary   BulkUpdateSummary
	Succeeded []string
	Failed    []BulkUpdateFailure
}

// BulkUpdateStatusCommandHandler handles batch status updates. Each row runs
// in its own transaction so one bad row never blocks the rest of the batch.
type BulkUpdateStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        func() time.Time
}

// NewBulkUpdateStatusCommandHandler creates a handler for batch status updates.
func NewBulkUpdateStatusCommandHandler(uowFactory ParcelUoWFactory) BulkUpdateStatusCommandHandler {
	return BulkUpdateStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the batch sequentially. Rows referencing unknown tracking
// numbers fail with "Parcel not found"; applied rows follow the same
// timestamp rules as a manual override and log a BULK_IMPORT event each.
func (h *BulkUpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkUpdateStatusCommand,
) (BulkUpdateStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkUpdateStatusResult{}, err
	}

	result := BulkUpdateStatusResult{
		Summary: BulkUpdateSummary{Total: len(cmd.Items())},
	}

	for _, item := range cmd.Items() {
		if err := h.applyItem(ctx, item, cmd.UserID()); err != nil {
			reason := err.Error()
			if errors.Is(err, errs.ErrObjectNotFound) {
				reason = "Parcel not found"
			}
			result.Failed = append(result.Failed, BulkUpdateFailure{
				TrackingNumber: item.TrackingNumber.String(),
				Reason:         reason,
			})
			result.Summary.Failed++
			continue
		}

		result.Succeeded = append(result.Succeeded, item.TrackingNumber.String())
		result.Summary.Success++
	}

	return result, nil
}

func (h *BulkUpdateStatusCommandHandler) applyItem(
	ctx context.Context,
	item BulkUpdateItem,
	userID *string,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ParcelRepository().GetByTrackingNumberForUpdate(ctx, item.TrackingNumber)
	if err != nil {
		return err
	}

	prior := aggregate.Status()
	if err = aggregate.ChangeStatus(item.Status, h.now()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	var payload map[string]any
	if item.Note != nil {
		payload = map[string]any{"note": *item.Note}
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeStatusUpdate,
		&prior,
		aggregate.Status(),
		parcel.SourceBulkImport,
		userID,
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
