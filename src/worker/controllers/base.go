package controllers

import (
	"timevalue/src/config"
	"timevalue/src/repositories"
	"timevalue/src/scheduler"
	"timevalue/src/services"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Controller owns the notification scan service and its cron schedule.
type Controller struct {
	Notifications *services.NotificationService
	ScanTask      *scheduler.ScheduledTask
	cfg           *config.Config
}

func NewController(db *pgxpool.Pool, cfg *config.Config) *Controller {
	rent := services.NewRentService()
	return &Controller{
		Notifications: services.NewNotificationService(
			repositories.NewVirtualAssetRepository(db),
			repositories.NewFixedAssetRepository(db),
			repositories.NewSettingsRepository(db),
			repositories.NewNotificationRepository(db),
			rent,
			cfg.Notifications,
		),
		cfg: cfg,
	}
}
