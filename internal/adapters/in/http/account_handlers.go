package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createAccountRequest struct {
	CarrierID   string `json:"carrierId"`
	AccountName string `json:"accountName"`
	BaseURL     string `json:"baseUrl"`
	ExternalID  string `json:"externalId"`
	APIKey      string `json:"apiKey"`
	IsEnabled   *bool  `json:"isEnabled"`
}

type updateAccountRequest struct {
	AccountName string `json:"accountName"`
	BaseURL     string `json:"baseUrl"`
	ExternalID  string `json:"externalId"`
	APIKey      string `json:"apiKey"`
	IsEnabled   *bool  `json:"isEnabled"`
}

// GetCarrierAccounts handles GET /api/carrier-accounts.
func (s *Server) GetCarrierAccounts(ctx echo.Context) error {
	var carrierID *kernel.UUID
	if raw := ctx.QueryParam("carrierId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		carrierID = &id
	}

	query, err := queries.NewGetCarrierAccountsQuery(carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	accounts, err := s.handlers.GetCarrierAccounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "accounts": accounts})
}

// CreateCarrierAccount handles POST /api/carrier-accounts.
func (s *Server) CreateCarrierAccount(ctx echo.Context) error {
	var req createAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	isEnabled := true
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierAccountCommand(
		accountID, carrierID, req.AccountName, req.BaseURL, req.ExternalID, req.APIKey, isEnabled)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateCarrierAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"ok": true,
		"account": echo.Map{
			"id":          accountID.String(),
			"carrierId":   carrierID.String(),
			"accountName": req.AccountName,
			"baseUrl":     req.BaseURL,
			"externalId":  req.ExternalID,
			"isEnabled":   isEnabled,
		},
	})
}

// UpdateCarrierAccount handles PUT /api/carrier-accounts/:id.
func (s *Server) UpdateCarrierAccount(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	isEnabled := true
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}

	cmd, err := commands.NewUpdateCarrierAccountCommand(
		accountID, req.AccountName, req.BaseURL, req.ExternalID, req.APIKey, isEnabled)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateCarrierAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok": true,
		"account": echo.Map{
			"id":          accountID.String(),
			"accountName": req.AccountName,
			"baseUrl":     req.BaseURL,
			"externalId":  req.ExternalID,
			"isEnabled":   isEnabled,
		},
	})
}

// ToggleCarrierAccount handles PATCH /api/carrier-accounts/:id/toggle.
func (s *Server) ToggleCarrierAccount(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewToggleCarrierAccountCommand(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	isEnabled, err := s.handlers.ToggleCarrierAccount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok": true,
		"account": echo.Map{
			"id":        accountID.String(),
			"isEnabled": isEnabled,
		},
	})
}

// DeleteCarrierAccount handles DELETE /api/carrier-accounts/:id.
func (s *Server) DeleteCarrierAccount(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCarrierAccountCommand(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteCarrierAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Account deleted successfully"})
}
