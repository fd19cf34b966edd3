package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SlaCheckJob runs the SLA escalation sweep on a schedule. Each run walks
// the parcels still sitting in transit and escalates the ones past their
// carrier's pending or lost windows.
type SlaCheckJob struct {
	handler  commands.RunSlaSweepCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewSlaCheckJob creates the scheduled SLA sweep. An empty schedule falls
// back to hourly runs.
func NewSlaCheckJob(handler commands.RunSlaSweepCommandHandler, schedule string, logger *slog.Logger) *SlaCheckJob {
	if schedule == "" {
		schedule = "@hourly"
	}

	return &SlaCheckJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "sla_check_job"),
	}
}

// Start schedules the sweep. Returns an error if the schedule expression
// does not parse.
func (j *SlaCheckJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, commands.NewRunSlaSweepCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "SLA check job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "SLA check job completed",
			"checked", report.Checked,
			"updatedToPending", report.UpdatedToPending,
			"updatedToLost", report.UpdatedToLost,
			"failures", len(report.Errors),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SLA check job started", "schedule", j.schedule)
	return nil
}

// Stop stops the SLA check job.
func (j *SlaCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "SLA check job stopped")
}
