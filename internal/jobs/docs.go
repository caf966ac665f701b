// Package jobs provides scheduled background tasks for the lab order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatsJob - Counts active orders per state and publishes them to the
// labflow_orders gauge. Runs on a configurable schedule, once a minute by default.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, recorder, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions with a leading seconds field.
//
// # Error Handling
//
// - A failed stats refresh is logged and the previous gauge values stay in place
// - A failed job start stops any already running jobs
package jobs
