// Package jobs provides scheduled background tasks for the food delivery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingDeliveryMonitorJob counts deliveries that have been PENDING for longer than the
// stale threshold and logs a warning when there are any. Courier assignment is driven by
// couriers accepting deliveries, so the monitor only reports.
//
// # Usage
//
//	monitor := jobs.NewPendingDeliveryMonitorJob(deliveryRepo, "0 * * * * *", 10*time.Minute, logger)
//	jobManager := jobs.NewJobManager(monitor)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field, and the
// descriptors such as "@every 30s".
package jobs
