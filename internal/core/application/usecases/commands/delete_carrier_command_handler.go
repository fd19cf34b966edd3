package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// DeleteCarrierCommandHandler handles carrier removal. A carrier with
// parcels attached cannot be removed; the conflict names how many parcels
// still reference it.
type DeleteCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewDeleteCarrierCommandHandler creates a handler for carrier removal.
func NewDeleteCarrierCommandHandler(uowFactory CarrierUoWFactory) DeleteCarrierCommandHandler {
	return DeleteCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the carrier if nothing references it.
func (h *DeleteCarrierCommandHandler) Handle(ctx context.Context, cmd DeleteCarrierCommand) error {
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

	carrierRepo := uow.CarrierRepository()

	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	linked, err := uow.ParcelRepository().CountByCarrier(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if linked > 0 {
		return errs.NewConflictError(fmt.Sprintf(
			"carrier %q has %d linked parcels and cannot be deleted", aggregate.Name(), linked))
	}

	if err = carrierRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
