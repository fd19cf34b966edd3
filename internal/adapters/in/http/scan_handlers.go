package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

type outboundScanRequest struct {
	TrackingNumber string  `json:"trackingNumber"`
	Destination    *string `json:"destination"`
	UserID         *string `json:"userId"`
}

type returnScanRequest struct {
	TrackingNumber string  `json:"trackingNumber"`
	ReceivedBy     *string `json:"receivedBy"`
	Location       *string `json:"location"`
	Note           *string `json:"note"`
}

// RecordOutboundScan handles POST /api/scan/outbound.
func (s *Server) RecordOutboundScan(ctx echo.Context) error {
	var req outboundScanRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	trackingNumber, err := kernel.NewTrackingNumber(req.TrackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordOutboundScanCommand(trackingNumber, req.Destination, req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.RecordOutboundScan.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return ctx.JSON(status, echo.Map{
		"ok": true,
		"parcel": echo.Map{
			"id":              result.ParcelID.String(),
			"trackingNumber":  result.TrackingNumber,
			"status":          result.Status.String(),
			"created":         result.Created,
			"carrierDetected": result.CarrierDetected,
			"viaApi":          result.ViaAPI,
		},
	})
}

// RecordReturnScan handles POST /api/scan/return.
func (s *Server) RecordReturnScan(ctx echo.Context) error {
	var req returnScanRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	trackingNumber, err := kernel.NewTrackingNumber(req.TrackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordReturnScanCommand(trackingNumber, req.ReceivedBy, req.Location, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RecordReturnScan.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok":             true,
		"trackingNumber": trackingNumber.String(),
		"status":         parcel.StatusReturnReceived.String(),
	})
}
