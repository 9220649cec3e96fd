package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodfast/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AllocationSweepJob periodically retries drone allocation for orders parked
// in awaiting_drone. Each tick drains the queue oldest-first until no order
// waits or no drone is eligible.
type AllocationSweepJob struct {
	handler commands.AllocateDroneCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAllocationSweepJob creates the sweep job, running every five seconds.
func NewAllocationSweepJob(handler commands.AllocateDroneCommandHandler, logger *slog.Logger) *AllocationSweepJob {
	return &AllocationSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "allocation_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *AllocationSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		for {
			err := j.handler.Handle(ctx, commands.NewAllocateDroneCommand())
			if err == nil {
				continue
			}

			// An empty queue or an exhausted fleet ends the tick; both are
			// expected operational states, not failures.
			if !errors.Is(err, commands.ErrNoWaitingOrders) && !errors.Is(err, commands.ErrNoEligibleDrones) {
				j.logger.ErrorContext(ctx, "Allocation sweep failed", "error", err)
			}
			return
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Allocation sweep job started (running every 5 seconds)")
	return nil
}

// Stop stops the sweep.
func (j *AllocationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Allocation sweep job stopped")
}
