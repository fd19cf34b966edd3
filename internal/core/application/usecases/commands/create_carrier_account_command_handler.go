package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/carrier"
)

// CreateCarrierAccountCommandHandler handles attaching an API account to an
// existing carrier.
type CreateCarrierAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateCarrierAccountCommandHandler creates a handler for account creation.
func NewCreateCarrierAccountCommandHandler(uowFactory AccountUoWFactory) CreateCarrierAccountCommandHandler {
	return CreateCarrierAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the account. The carrier must exist.
func (h *CreateCarrierAccountCommandHandler) Handle(ctx context.Context, cmd CreateCarrierAccountCommand) error {
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

	if _, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID()); err != nil {
		return err
	}

	account, err := carrier.NewAccount(
		cmd.AccountID(),
		cmd.CarrierID(),
		cmd.Label(),
		cmd.BaseURL(),
		cmd.ExternalID(),
		cmd.APIKey(),
		cmd.IsEnabled(),
	)
	if err != nil {
		return err
	}

	if err = uow.CarrierAccountRepository().Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
