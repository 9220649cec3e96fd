package jobs

import (
	"fmt"
	"log/slog"

	"foodfast/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	allocationSweepJob *AllocationSweepJob
	batteryRechargeJob *BatteryRechargeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	allocateDroneHandler commands.AllocateDroneCommandHandler,
	rechargeDronesHandler commands.RechargeDronesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		allocationSweepJob: NewAllocationSweepJob(allocateDroneHandler, logger),
		batteryRechargeJob: NewBatteryRechargeJob(rechargeDronesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.allocationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start allocation sweep job: %w", err)
	}

	if err := jm.batteryRechargeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.allocationSweepJob.Stop()
		return fmt.Errorf("failed to start battery recharge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.batteryRechargeJob.Stop()
	jm.allocationSweepJob.Stop()
}
