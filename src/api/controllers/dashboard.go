package controllers

import (
	"context"
	"errors"
	"time"

	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/schemas"
	"timevalue/src/services"
	"timevalue/src/utils"
)

const dashboardCacheTTL = time.Minute

// GetDashboard computes the home-page snapshot. The result is cached briefly
// and the cache is cleared on any asset write.
func (c *Controller) GetDashboard(ctx context.Context, userID int) (*schemas.DashboardResponse, error) {
	if cached, ok := c.dashboardCache.Get(); ok && cached.UserID == userID {
		return &cached.Data, nil
	}

	virtual, err := c.VirtualAssets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	fixed, err := c.FixedAssets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.Day(time.Now())
	monthStart, monthEnd := utils.MonthWindow(today.Year(), today.Month())

	dashboard := schemas.DashboardResponse{
		VirtualAssetCount: len(virtual),
		FixedAssetCount:   len(fixed),
	}

	for i := range virtual {
		asset := &virtual[i]
		dashboard.MonthVirtualCost += c.Proration.Allocate(asset.StartDate, asset.EndDate, asset.TotalAmount, monthStart, monthEnd)
		if services.VirtualAssetStatus(asset.EndDate, today) == models.VirtualStatusExpiring {
			dashboard.ExpiringSoonCount++
		}
	}

	for i := range fixed {
		asset := &fixed[i]
		result := c.Depreciation.Calculate(services.DepreciationInput{
			OriginalValue:   asset.OriginalValue,
			ResidualRate:    asset.ResidualRate,
			UsefulLifeYears: asset.UsefulLifeYears,
			PurchaseDate:    asset.PurchaseDate,
		}, today)
		dashboard.FixedTotalValue += result.CurrentValue
		dashboard.FixedOriginal += asset.OriginalValue
		dashboard.MonthRentIncome += c.Rent.MonthlyIncome(&asset.FixedAsset, today.Year(), today.Month())
	}

	c.dashboardCache.Set(dashboardSnapshot{UserID: userID, Data: dashboard}, dashboardCacheTTL)
	return &dashboard, nil
}

func (c *Controller) GetNotificationSetting(ctx context.Context, userID int) (*schemas.NotificationSettingResponse, error) {
	setting, err := c.Settings.GetNotificationSetting(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &schemas.NotificationSettingResponse{
			ExpiringEnabled: true,
			ExpiringDays:    c.cfg.Notifications.DefaultExpiringDays,
			RentDueEnabled:  true,
			RentDueDays:     c.cfg.Notifications.DefaultRentDueDays,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &schemas.NotificationSettingResponse{
		ExpiringEnabled: setting.ExpiringEnabled,
		ExpiringDays:    setting.ExpiringDays,
		RentDueEnabled:  setting.RentDueEnabled,
		RentDueDays:     setting.RentDueDays,
	}, nil
}

func (c *Controller) UpdateNotificationSetting(ctx context.Context, userID int, req schemas.NotificationSettingRequest) error {
	if req.ExpiringDays < 0 || req.RentDueDays < 0 {
		return utils.BadRequest("notification windows must not be negative")
	}
	return c.Settings.UpsertNotificationSetting(ctx, &models.NotificationSetting{
		UserID:          userID,
		ExpiringEnabled: req.ExpiringEnabled,
		ExpiringDays:    req.ExpiringDays,
		RentDueEnabled:  req.RentDueEnabled,
		RentDueDays:     req.RentDueDays,
	})
}

func (c *Controller) GetPreference(ctx context.Context, userID int) (*schemas.PreferenceResponse, error) {
	preference, err := c.Settings.GetPreference(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &schemas.PreferenceResponse{CurrencySymbol: "¥", Theme: "light"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &schemas.PreferenceResponse{
		CurrencySymbol: preference.CurrencySymbol,
		Theme:          preference.Theme,
		HideAmounts:    preference.HideAmounts,
	}, nil
}

func (c *Controller) UpdatePreference(ctx context.Context, userID int, req schemas.PreferenceRequest) error {
	return c.Settings.UpsertPreference(ctx, &models.Preference{
		UserID:         userID,
		CurrencySymbol: req.CurrencySymbol,
		Theme:          req.Theme,
		HideAmounts:    req.HideAmounts,
	})
}

func (c *Controller) GetNotifications(ctx context.Context, userID, limit int) ([]schemas.NotificationResponse, error) {
	notifications, err := c.Notifications.GetAllByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, schemas.NotificationResponse{
			ID:        notification.ID,
			Kind:      notification.Kind,
			Title:     notification.Title,
			Body:      notification.Body,
			AssetID:   notification.AssetID,
			Read:      notification.ReadAt != nil,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (c *Controller) MarkNotificationRead(ctx context.Context, userID, id int) error {
	err := c.Notifications.MarkRead(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("notification not found")
	}
	return err
}
