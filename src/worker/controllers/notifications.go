package controllers

import (
	"context"
	"time"

	"timevalue/src/scheduler"
	"timevalue/src/utils"

	"github.com/sirupsen/logrus"
)

// RunScan triggers one full notification scan across all users.
func (c *Controller) RunScan(ctx context.Context) (int, error) {
	return c.Notifications.ScanAllUsers(ctx, time.Now())
}

// ScheduleDailyScan installs the recurring scan. Rescheduling replaces the
// previous entry.
func (c *Controller) ScheduleDailyScan(logger *logrus.Logger) error {
	if c.ScanTask != nil {
		c.ScanTask.Cancel()
		c.ScanTask = nil
	}

	cronSpec := c.cfg.Notifications.CronSpec
	if cronSpec == "" {
		cronSpec = "0 9 * * *"
	}

	task, err := scheduler.NewScheduledTask(cronSpec, func() {
		ctx, cancel := context.WithTimeout(utils.WithLogger(context.Background(), logger), 5*time.Minute)
		defer cancel()

		created, err := c.RunScan(ctx)
		if err != nil {
			logger.WithError(err).Error("scheduled notification scan failed")
			return
		}
		logger.WithField("notifications_created", created).Info("scheduled notification scan completed")
	})
	if err != nil {
		return err
	}

	c.ScanTask = task
	return nil
}
