package cmd

import "time"

// Config carries the process configuration read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// CronSecret guards the /api/cron routes. Empty rejects all cron calls.
	CronSecret string

	// SlaJobEnabled controls whether the scheduled SLA sweep runs in-process.
	// The sweep stays reachable through the cron endpoint either way.
	SlaJobEnabled bool

	// SlaJobSchedule is a cron expression for the sweep; empty means hourly.
	SlaJobSchedule string

	// CarrierLookupTimeout bounds each upstream carrier API probe.
	CarrierLookupTimeout time.Duration

	// SeedCarriers inserts the default carrier set at startup when true.
	SeedCarriers bool
}
