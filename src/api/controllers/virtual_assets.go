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

func (c *Controller) GetAllVirtualAssets(ctx context.Context, userID int) ([]schemas.VirtualAssetResponse, error) {
	assets, err := c.VirtualAssets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.Day(time.Now())
	responses := make([]schemas.VirtualAssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, c.virtualAssetResponse(&assets[i], today))
	}
	return responses, nil
}

func (c *Controller) GetVirtualAsset(ctx context.Context, userID, id int) (*schemas.VirtualAssetResponse, error) {
	asset, err := c.VirtualAssets.GetByID(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("asset not found")
	}
	if err != nil {
		return nil, err
	}
	response := c.virtualAssetResponse(asset, utils.Day(time.Now()))
	return &response, nil
}

func (c *Controller) CreateVirtualAsset(ctx context.Context, userID int, req schemas.VirtualAssetRequest) (*schemas.IDResponse, error) {
	asset, err := c.virtualAssetFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := c.VirtualAssets.Create(ctx, asset); err != nil {
		return nil, err
	}
	c.dashboardCache.Clear()
	return &schemas.IDResponse{ID: asset.ID}, nil
}

func (c *Controller) UpdateVirtualAsset(ctx context.Context, userID, id int, req schemas.VirtualAssetRequest) error {
	asset, err := c.virtualAssetFromRequest(userID, req)
	if err != nil {
		return err
	}
	asset.ID = id
	err = c.VirtualAssets.Update(ctx, asset)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("asset not found")
	}
	if err == nil {
		c.dashboardCache.Clear()
	}
	return err
}

func (c *Controller) DeleteVirtualAsset(ctx context.Context, userID, id int) error {
	err := c.VirtualAssets.SoftDelete(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("asset not found")
	}
	if err == nil {
		c.dashboardCache.Clear()
	}
	return err
}

// GetExpiringAssets lists subscriptions ending within the window, soonest
// first.
func (c *Controller) GetExpiringAssets(ctx context.Context, userID, withinDays int) ([]schemas.ExpiringAssetResponse, error) {
	if withinDays <= 0 {
		withinDays = services.ExpiringSoonDays
	}
	today := utils.Day(time.Now())
	assets, err := c.VirtualAssets.GetExpiring(ctx, userID, today, today.AddDate(0, 0, withinDays))
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.ExpiringAssetResponse, 0, len(assets))
	for i := range assets {
		asset := &assets[i]
		responses = append(responses, schemas.ExpiringAssetResponse{
			ID:            asset.ID,
			Name:          asset.Name,
			CategoryName:  asset.CategoryName,
			EndDate:       formatDay(asset.EndDate),
			RemainingDays: utils.DaysBetween(today, asset.EndDate),
			TotalAmount:   asset.TotalAmount,
		})
	}
	return responses, nil
}

func (c *Controller) virtualAssetFromRequest(userID int, req schemas.VirtualAssetRequest) (*models.VirtualAsset, error) {
	if req.Name == "" {
		return nil, utils.BadRequest("name is required")
	}
	if req.TotalAmount <= 0 {
		return nil, utils.BadRequest("total amount must be positive")
	}
	startDate, err := utils.ParseDay(req.StartDate)
	if err != nil {
		return nil, utils.BadRequest("invalid start date")
	}
	endDate, err := utils.ParseDay(req.EndDate)
	if err != nil {
		return nil, utils.BadRequest("invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, utils.UnprocessableEntity("end date precedes start date")
	}

	return &models.VirtualAsset{
		UserID:          userID,
		CategoryID:      req.CategoryID,
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		TotalAmount:     req.TotalAmount,
		StartDate:       startDate,
		EndDate:         endDate,
		Description:     req.Description,
		AccountUsername: req.AccountUsername,
		AccountPassword: req.AccountPassword,
	}, nil
}

// virtualAssetResponse decorates a stored row with the derived lifecycle
// numbers, all computed against today.
func (c *Controller) virtualAssetResponse(asset *models.VirtualAssetWithCategory, today time.Time) schemas.VirtualAssetResponse {
	totalDays := utils.DaysBetween(asset.StartDate, asset.EndDate) + 1
	remaining := utils.DaysBetween(today, asset.EndDate)
	if remaining < 0 {
		remaining = 0
	}

	elapsed := utils.DaysBetween(asset.StartDate, today) + 1
	progress := 0.0
	if totalDays > 0 && elapsed > 0 {
		progress = float64(elapsed) / float64(totalDays) * 100
		if progress > 100 {
			progress = 100
		}
	}

	monthStart, monthEnd := utils.MonthWindow(today.Year(), today.Month())
	monthCost := c.Proration.Allocate(asset.StartDate, asset.EndDate, asset.TotalAmount, monthStart, monthEnd)

	return schemas.VirtualAssetResponse{
		ID:              asset.ID,
		Name:            asset.Name,
		CategoryID:      asset.CategoryID,
		CategoryName:    asset.CategoryName,
		CategoryIcon:    utils.GetCategoryIcon(asset.CategoryIcon),
		ProjectID:       asset.ProjectID,
		TotalAmount:     asset.TotalAmount,
		StartDate:       formatDay(asset.StartDate),
		EndDate:         formatDay(asset.EndDate),
		Description:     asset.Description,
		AccountUsername: asset.AccountUsername,
		AccountPassword: asset.AccountPassword,

		Status:        services.VirtualAssetStatus(asset.EndDate, today),
		TotalDays:     totalDays,
		RemainingDays: remaining,
		DailyValue:    c.Proration.DailyValue(asset.StartDate, asset.EndDate, asset.TotalAmount),
		ProgressPct:   progress,
		MonthCost:     monthCost,
	}
}
