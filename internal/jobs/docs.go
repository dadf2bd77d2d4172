// Package jobs provides scheduled background tasks for the zone platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery zone service.
//
// # Available Jobs
//
// 1. ZoneAuditJob - Runs nightly to flag overlapping equal-priority active
// zones, the configuration smell that makes quote resolution fall back to
// its deterministic tie-break.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(db, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Audit findings are warnings, not errors: an overlap never blocks quote
// traffic, it only degrades a tenant's configuration quality. Job failures
// (for instance a database outage) are logged and retried on the next run.
package jobs
