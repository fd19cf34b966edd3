package http

import (
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RunSlaCheck handles POST /api/cron/check-sla.
func (s *Server) RunSlaCheck(ctx echo.Context) error {
	report, err := s.handlers.RunSlaSweep.Handle(ctx.Request().Context(), commands.NewRunSlaSweepCommand())
	if err != nil {
		return respondError(ctx, err)
	}

	errorMessages := report.Errors
	if errorMessages == nil {
		errorMessages = []string{}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"results": echo.Map{
			"checked":          report.Checked,
			"updatedToPending": report.UpdatedToPending,
			"updatedToLost":    report.UpdatedToLost,
			"errors":           errorMessages,
		},
	})
}

// GetCronStats handles GET /api/cron/stats.
func (s *Server) GetCronStats(ctx echo.Context) error {
	stats, err := s.handlers.GetParcelStats.Handle(ctx.Request().Context(), queries.NewGetParcelStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"ok":              true,
		"parcelsByStatus": stats.ByStatus,
		"carriers":        stats.Carriers,
	})
}
