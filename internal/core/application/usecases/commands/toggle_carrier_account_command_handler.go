package commands

import (
	"context"
)

// ToggleCarrierAccountCommandHandler handles enabling and disabling accounts.
type ToggleCarrierAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewToggleCarrierAccountCommandHandler creates a handler for account toggling.
func NewToggleCarrierAccountCommandHandler(uowFactory AccountUoWFactory) ToggleCarrierAccountCommandHandler {
	return ToggleCarrierAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the account's enabled flag and reports the resulting state.
func (h *ToggleCarrierAccountCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleCarrierAccountCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.CarrierAccountRepository().Get(ctx, cmd.AccountID())
	if err != nil {
		return false, err
	}

	if err = account.Toggle(); err != nil {
		return false, err
	}

	if err = uow.CarrierAccountRepository().Update(ctx, account); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return account.IsEnabled(), nil
}
