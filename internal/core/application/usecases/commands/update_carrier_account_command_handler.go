package commands

import (
	"context"
)

// UpdateCarrierAccountCommandHandler handles account rewrites.
type UpdateCarrierAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateCarrierAccountCommandHandler creates a handler for account rewrites.
func NewUpdateCarrierAccountCommandHandler(uowFactory AccountUoWFactory) UpdateCarrierAccountCommandHandler {
	return UpdateCarrierAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rewrites the account in place.
func (h *UpdateCarrierAccountCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierAccountCommand) error {
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

	account, err := uow.CarrierAccountRepository().Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = account.Update(
		cmd.Label(), cmd.BaseURL(), cmd.ExternalID(), cmd.APIKey(), cmd.IsEnabled()); err != nil {
		return err
	}

	if err = uow.CarrierAccountRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
