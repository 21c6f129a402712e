package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timevalue/src/config"
	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/utils"
)

type NotificationServiceI interface {
	ScanAllUsers(ctx context.Context, today time.Time) (int, error)
	ScanUser(ctx context.Context, userID int, today time.Time) (int, error)
}

// NotificationService walks each user's assets and writes notification rows
// for subscriptions about to lapse and rents about to fall due. Repeated
// scans on the same day are idempotent.
type NotificationService struct {
	virtualAssets repositories.VirtualAssetRepository
	fixedAssets   repositories.FixedAssetRepository
	settings      repositories.SettingsRepository
	notifications repositories.NotificationRepository
	rent          *RentService
	defaults      config.NotificationsConfig
}

func NewNotificationService(
	virtualAssets repositories.VirtualAssetRepository,
	fixedAssets repositories.FixedAssetRepository,
	settings repositories.SettingsRepository,
	notifications repositories.NotificationRepository,
	rent *RentService,
	defaults config.NotificationsConfig,
) *NotificationService {
	return &NotificationService{
		virtualAssets: virtualAssets,
		fixedAssets:   fixedAssets,
		settings:      settings,
		notifications: notifications,
		rent:          rent,
		defaults:      defaults,
	}
}

func (s *NotificationService) ScanAllUsers(ctx context.Context, today time.Time) (int, error) {
	logger := utils.LoggerFromContext(ctx)
	userIDs, err := s.notifications.AllUserIDs(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, userID := range userIDs {
		created, err := s.ScanUser(ctx, userID, today)
		if err != nil {
			logger.WithError(err).WithField("user_id", userID).Error("notification scan failed")
			continue
		}
		total += created
	}
	return total, nil
}

func (s *NotificationService) ScanUser(ctx context.Context, userID int, today time.Time) (int, error) {
	today = utils.Day(today)
	setting, err := s.userSetting(ctx, userID)
	if err != nil {
		return 0, err
	}

	created := 0
	if setting.ExpiringEnabled {
		n, err := s.scanExpiring(ctx, userID, setting.ExpiringDays, today)
		if err != nil {
			return created, err
		}
		created += n
	}
	if setting.RentDueEnabled {
		n, err := s.scanRentDue(ctx, userID, setting.RentDueDays, today)
		if err != nil {
			return created, err
		}
		created += n
	}
	return created, nil
}

func (s *NotificationService) userSetting(ctx context.Context, userID int) (*models.NotificationSetting, error) {
	setting, err := s.settings.GetNotificationSetting(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.NotificationSetting{
			UserID:          userID,
			ExpiringEnabled: true,
			ExpiringDays:    s.defaults.DefaultExpiringDays,
			RentDueEnabled:  true,
			RentDueDays:     s.defaults.DefaultRentDueDays,
		}, nil
	}
	return setting, err
}

func (s *NotificationService) scanExpiring(ctx context.Context, userID, windowDays int, today time.Time) (int, error) {
	if windowDays <= 0 {
		windowDays = s.defaults.DefaultExpiringDays
	}
	assets, err := s.virtualAssets.GetExpiring(ctx, userID, today, today.AddDate(0, 0, windowDays))
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range assets {
		asset := &assets[i]
		exists, err := s.notifications.ExistsRecent(ctx, userID, models.NotificationKindExpiring, asset.ID, today)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		daysLeft := utils.DaysBetween(today, asset.EndDate)
		notification := &models.Notification{
			UserID:  userID,
			Kind:    models.NotificationKindExpiring,
			Title:   fmt.Sprintf("%s 即将到期", asset.Name),
			Body:    fmt.Sprintf("还剩 %d 天到期（%s）", daysLeft, asset.EndDate.Format(utils.ShortDashDateLayout)),
			AssetID: &asset.ID,
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *NotificationService) scanRentDue(ctx context.Context, userID, windowDays int, today time.Time) (int, error) {
	if windowDays <= 0 {
		windowDays = s.defaults.DefaultRentDueDays
	}
	assets, err := s.fixedAssets.GetAllRented(ctx, userID)
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range assets {
		asset := &assets[i]
		projection, ok := s.rent.NextDueDate(&asset.FixedAsset, today)
		if !ok || projection.DaysUntil > windowDays {
			continue
		}
		exists, err := s.notifications.ExistsRecent(ctx, userID, models.NotificationKindRentDue, asset.ID, today)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		notification := &models.Notification{
			UserID:  userID,
			Kind:    models.NotificationKindRentDue,
			Title:   fmt.Sprintf("%s %s", asset.Name, projection.Label),
			Body:    fmt.Sprintf("下次收租日 %s，还有 %d 天", projection.DueDate.Format(utils.ShortDashDateLayout), projection.DaysUntil),
			AssetID: &asset.ID,
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
