package http

import (
	"net/http"
	"strconv"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

type updateStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
	UserID *string `json:"userId"`
}

type bulkUpdateRequest struct {
	Updates []bulkUpdateEntry `json:"updates"`
	UserID  *string           `json:"userId"`
}

type bulkUpdateEntry struct {
	TrackingNumber string  `json:"trackingNumber"`
	Status         string  `json:"status"`
	Note           *string `json:"note"`
}

// GetParcels handles GET /api/parcels.
func (s *Server) GetParcels(ctx echo.Context) error {
	var status *string
	if raw := ctx.QueryParam("status"); raw != "" {
		status = &raw
	}

	// Unparseable limits fall back to the default via the query's clamping.
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	query, err := queries.NewGetParcelsQuery(status, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.handlers.GetParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "parcels": parcels})
}

// GetParcel handles GET /api/parcels/:trackingNumber.
func (s *Server) GetParcel(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(trackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.handlers.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "parcel": found})
}

// UpdateParcelStatus handles PATCH /api/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := parcel.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, status, req.Note, req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok": true,
		"parcel": echo.Map{
			"id":     parcelID.String(),
			"status": status.String(),
		},
	})
}

// BulkUpdateStatus handles POST /api/parcels/bulk-update.
func (s *Server) BulkUpdateStatus(ctx echo.Context) error {
	var req bulkUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	items := make([]commands.BulkUpdateItem, 0, len(req.Updates))
	for _, entry := range req.Updates {
		trackingNumber, err := kernel.NewTrackingNumber(entry.TrackingNumber)
		if err != nil {
			return respondError(ctx, err)
		}
		status, err := parcel.ParseStatus(entry.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, commands.BulkUpdateItem{
			TrackingNumber: trackingNumber,
			Status:         status,
			Note:           entry.Note,
		})
	}

	cmd, err := commands.NewBulkUpdateStatusCommand(items, req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.BulkUpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	failed := make([]echo.Map, 0, len(result.Failed))
	for _, failure := range result.Failed {
		failed = append(failed, echo.Map{
			"trackingNumber": failure.TrackingNumber,
			"reason":         failure.Reason,
		})
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok": true,
		"summary": echo.Map{
			"total":   result.Summary.Total,
			"success": result.Summary.Success,
			"failed":  result.Summary.Failed,
		},
		"results": echo.Map{
			"success": result.Succeeded,
			"failed":  failed,
		},
	})
}
