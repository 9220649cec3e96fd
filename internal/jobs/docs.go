// Package jobs provides scheduled background tasks for the delivery backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. AllocationSweepJob - Runs every 5 seconds to retry drone allocation for orders waiting in awaiting_drone
// 2. BatteryRechargeJob - Runs every 30 seconds to recharge charging drones and return full ones to service
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(allocateDroneHandler, rechargeDronesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs on shutdown
//	defer jobManager.StopAll()
//
// Business-outcome sentinels (no waiting orders, no eligible drones) are
// filtered from error logging because they are expected operational states.
package jobs
