package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// UpdateParcelStatusCommandHandler handles manual status overrides. The
// override and its STATUS_UPDATE event land in the same transaction; the
// event is written even when the target equals the current status, so the
// audit trail records every operator action.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        func() time.Time
}

// NewUpdateParcelStatusCommandHandler creates a handler for manual status changes.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle applies one manual status override.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	aggregate, err := uow.ParcelRepository().GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	prior := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status(), h.now()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	var payload map[string]any
	if cmd.Note() != nil {
		payload = map[string]any{"note": *cmd.Note()}
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeStatusUpdate,
		&prior,
		aggregate.Status(),
		parcel.SourceManual,
		cmd.UserID(),
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
