// Package http is the inbound HTTP adapter: an echo server translating the
// JSON API onto command and query handlers. Responses wrap as {ok, ...};
// domain errors map onto 400/404/409, everything else onto 500. The adapter
// holds no business logic beyond request decoding and response shaping.
package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the HTTP surface exposes.
type Handlers struct {
	RecordOutboundScan commands.RecordOutboundScanCommandHandler
	RecordReturnScan   commands.RecordReturnScanCommandHandler
	UpdateParcelStatus commands.UpdateParcelStatusCommandHandler
	BulkUpdateStatus   commands.BulkUpdateStatusCommandHandler
	RunSlaSweep        commands.RunSlaSweepCommandHandler

	CreateCarrier commands.CreateCarrierCommandHandler
	UpdateCarrier commands.UpdateCarrierCommandHandler
	DeleteCarrier commands.DeleteCarrierCommandHandler

	CreateCarrierAccount commands.CreateCarrierAccountCommandHandler
	UpdateCarrierAccount commands.UpdateCarrierAccountCommandHandler
	ToggleCarrierAccount commands.ToggleCarrierAccountCommandHandler
	DeleteCarrierAccount commands.DeleteCarrierAccountCommandHandler

	GetParcels         queries.GetParcelsQueryHandler
	GetParcel          queries.GetParcelQueryHandler
	GetCarriers        queries.GetCarriersQueryHandler
	GetCarrierAccounts queries.GetCarrierAccountsQueryHandler
	GetParcelStats     queries.GetParcelStatsQueryHandler
}

// Server wires the HTTP routes onto the application use cases.
type Server struct {
	handlers   Handlers
	cronSecret string
}

// NewServer creates the HTTP server. The cron secret guards the /api/cron
// routes; an empty secret rejects every cron call.
func NewServer(handlers Handlers, cronSecret string) *Server {
	return &Server{
		handlers:   handlers,
		cronSecret: cronSecret,
	}
}

// RegisterRoutes mounts every route of the API onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/scan/outbound", s.RecordOutboundScan)
	api.POST("/scan/return", s.RecordReturnScan)

	api.GET("/parcels", s.GetParcels)
	api.GET("/parcels/:trackingNumber", s.GetParcel)
	api.PATCH("/parcels/:id/status", s.UpdateParcelStatus)
	api.POST("/parcels/bulk-update", s.BulkUpdateStatus)

	api.GET("/carriers", s.GetCarriers)
	api.POST("/carriers", s.CreateCarrier)
	api.GET("/carriers/:id", s.GetCarrier)
	api.PUT("/carriers/:id", s.UpdateCarrier)
	api.DELETE("/carriers/:id", s.DeleteCarrier)

	api.GET("/carrier-accounts", s.GetCarrierAccounts)
	api.POST("/carrier-accounts", s.CreateCarrierAccount)
	api.PUT("/carrier-accounts/:id", s.UpdateCarrierAccount)
	api.PATCH("/carrier-accounts/:id/toggle", s.ToggleCarrierAccount)
	api.DELETE("/carrier-accounts/:id", s.DeleteCarrierAccount)

	cron := api.Group("/cron", s.requireCronSecret)
	cron.POST("/check-sla", s.RunSlaCheck)
	cron.GET("/stats", s.GetCronStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"ok": true})
}

// requireCronSecret rejects cron calls without the shared bearer secret.
func (s *Server) requireCronSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if s.cronSecret == "" || auth != "Bearer "+s.cronSecret {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{
				"ok":      false,
				"message": "Unauthorized",
			})
		}
		return next(ctx)
	}
}

// respondError maps a use case error onto the API status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, echo.Map{"ok": false, "message": err.Error()})
}

// respondBadRequest reports an undecodable or malformed request.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": message})
}
