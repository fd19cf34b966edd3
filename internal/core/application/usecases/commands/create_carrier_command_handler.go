package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/pkg/errs"
)

// CreateCarrierCommandHandler handles carrier registration. Carrier names
// are unique; a duplicate surfaces as a conflict, not a validation error.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the carrier.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
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

	if _, err := carrierRepo.GetByName(ctx, cmd.Name()); err == nil {
		return errs.NewConflictError(fmt.Sprintf("carrier %q already exists", cmd.Name()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Name(), cmd.Rule(), cmd.Sla())
	if err != nil {
		return err
	}

	if err = carrierRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
