package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// UpdateCarrierCommandHandler handles carrier reconfiguration. Renaming a
// carrier to a name already taken by another carrier is a conflict.
type UpdateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewUpdateCarrierCommandHandler creates a handler for carrier reconfiguration.
func NewUpdateCarrierCommandHandler(uowFactory CarrierUoWFactory) UpdateCarrierCommandHandler {
	return UpdateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reconfigures the carrier.
func (h *UpdateCarrierCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierCommand) error {
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

	if existing, err := carrierRepo.GetByName(ctx, cmd.Name()); err == nil {
		if !existing.ID().IsEqual(aggregate.ID()) {
			return errs.NewConflictError(fmt.Sprintf("carrier %q already exists", cmd.Name()))
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Rule(), cmd.Sla()); err != nil {
		return err
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
