// Package jobs provides scheduled background tasks for the parcel tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. SlaCheckJob - Runs hourly to escalate parcels that sat in transit past
// their carrier's SLA windows (to PENDING_TOO_LONG and then LOST).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runSlaSweepHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The SLA check runs on the "@hourly" schedule. Escalation windows are
// measured in days, so an hourly cadence keeps transitions timely without
// hammering the parcel store. The same sweep is also reachable on demand
// through the cron HTTP endpoint.
//
// # Error Handling
//
// The sweep isolates each parcel in its own transaction and reports
// per-parcel failures inside its result, so a run only errors as a whole
// when the candidate scan itself fails. Whole-run failures are logged.
package jobs
