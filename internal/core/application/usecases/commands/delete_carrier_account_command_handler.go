package commands

import (
	"context"
)

// DeleteCarrierAccountCommandHandler handles account removal. Accounts carry
// no history, so removal is unconditional once the account exists.
type DeleteCarrierAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewDeleteCarrierAccountCommandHandler creates a handler for account removal.
func NewDeleteCarrierAccountCommandHandler(uowFactory AccountUoWFactory) DeleteCarrierAccountCommandHandler {
	return DeleteCarrierAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the account.
func (h *DeleteCarrierAccountCommandHandler) Handle(ctx context.Context, cmd DeleteCarrierAccountCommand) error {
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

	if err = uow.CarrierAccountRepository().Delete(ctx, account.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
