package jobs

import (
	"context"
	"log/slog"

	"foodfast/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// rechargeIncrement is the battery percentage gained per recharge tick.
// Drones reaching 100% flip back to available inside the aggregate.
const rechargeIncrement = 10

// BatteryRechargeJob tops up charging drones on a fixed schedule.
type BatteryRechargeJob struct {
	handler commands.RechargeDronesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBatteryRechargeJob creates the recharge job, running every thirty seconds.
func NewBatteryRechargeJob(handler commands.RechargeDronesCommandHandler, logger *slog.Logger) *BatteryRechargeJob {
	return &BatteryRechargeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "battery_recharge_job"),
	}
}

// Start schedules the recharge ticks.
func (j *BatteryRechargeJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRechargeDronesCommand(rechargeIncrement)
		if err != nil {
			j.logger.ErrorContext(ctx, "Battery recharge command invalid", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Battery recharge job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Battery recharge job started (running every 30 seconds)")
	return nil
}

// Stop stops the recharge ticks.
func (j *BatteryRechargeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Battery recharge job stopped")
}
