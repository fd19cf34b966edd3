package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type carrierRequest struct {
	Name           string `json:"name"`
	RuleKind       string `json:"ruleKind"`
	RuleValue      string `json:"ruleValue"`
	SlaPendingDays int    `json:"slaPendingDays"`
	SlaLostDays    int    `json:"slaLostDays"`
}

// GetCarriers handles GET /api/carriers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	carriers, err := s.handlers.GetCarriers.Handle(ctx.Request().Context(), queries.NewGetCarriersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "carriers": carriers})
}

// GetCarrier handles GET /api/carriers/:id. The registry is small, so the
// lookup reuses the listing query and picks the requested row out.
func (s *Server) GetCarrier(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	carriers, err := s.handlers.GetCarriers.Handle(ctx.Request().Context(), queries.NewGetCarriersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	for _, c := range carriers {
		if c.ID.IsEqual(carrierID) {
			return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "carrier": c})
		}
	}

	return respondError(ctx, errs.NewObjectNotFoundError("carrierID", carrierID.String()))
}

// CreateCarrier handles POST /api/carriers.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var req carrierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(
		carrierID, req.Name, req.RuleKind, req.RuleValue, req.SlaPendingDays, req.SlaLostDays)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"ok": true,
		"carrier": echo.Map{
			"id":             carrierID.String(),
			"name":           req.Name,
			"ruleKind":       req.RuleKind,
			"ruleValue":      req.RuleValue,
			"slaPendingDays": req.SlaPendingDays,
			"slaLostDays":    req.SlaLostDays,
		},
	})
}

// UpdateCarrier handles PUT /api/carriers/:id.
func (s *Server) UpdateCarrier(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req carrierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCarrierCommand(
		carrierID, req.Name, req.RuleKind, req.RuleValue, req.SlaPendingDays, req.SlaLostDays)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok": true,
		"carrier": echo.Map{
			"id":             carrierID.String(),
			"name":           req.Name,
			"ruleKind":       req.RuleKind,
			"ruleValue":      req.RuleValue,
			"slaPendingDays": req.SlaPendingDays,
			"slaLostDays":    req.SlaLostDays,
		},
	})
}

// DeleteCarrier handles DELETE /api/carriers/:id.
func (s *Server) DeleteCarrier(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCarrierCommand(carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Carrier deleted successfully"})
}
