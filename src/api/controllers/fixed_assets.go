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

func (c *Controller) GetAllFixedAssets(ctx context.Context, userID int) ([]schemas.FixedAssetResponse, error) {
	assets, err := c.FixedAssets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.Day(time.Now())
	responses := make([]schemas.FixedAssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, c.fixedAssetResponse(&assets[i], today))
	}
	return responses, nil
}

func (c *Controller) GetFixedAsset(ctx context.Context, userID, id int) (*schemas.FixedAssetResponse, error) {
	asset, err := c.FixedAssets.GetByID(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("asset not found")
	}
	if err != nil {
		return nil, err
	}
	response := c.fixedAssetResponse(asset, utils.Day(time.Now()))
	return &response, nil
}

func (c *Controller) CreateFixedAsset(ctx context.Context, userID int, req schemas.FixedAssetRequest) (*schemas.IDResponse, error) {
	asset, err := c.fixedAssetFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := c.FixedAssets.Create(ctx, asset); err != nil {
		return nil, err
	}
	c.dashboardCache.Clear()
	return &schemas.IDResponse{ID: asset.ID}, nil
}

func (c *Controller) UpdateFixedAsset(ctx context.Context, userID, id int, req schemas.FixedAssetRequest) error {
	asset, err := c.fixedAssetFromRequest(userID, req)
	if err != nil {
		return err
	}
	asset.ID = id
	err = c.FixedAssets.Update(ctx, asset)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("asset not found")
	}
	if err == nil {
		c.dashboardCache.Clear()
	}
	return err
}

func (c *Controller) DeleteFixedAsset(ctx context.Context, userID, id int) error {
	err := c.FixedAssets.SoftDelete(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("asset not found")
	}
	if err == nil {
		c.dashboardCache.Clear()
	}
	return err
}

func (c *Controller) fixedAssetFromRequest(userID int, req schemas.FixedAssetRequest) (*models.FixedAsset, error) {
	if req.Name == "" {
		return nil, utils.BadRequest("name is required")
	}
	if req.OriginalValue <= 0 {
		return nil, utils.BadRequest("original value must be positive")
	}
	if req.ResidualRate < 0 || req.ResidualRate > 100 {
		return nil, utils.UnprocessableEntity("residual rate must fall within 0-100")
	}
	if req.UsefulLifeYears < 1 {
		return nil, utils.UnprocessableEntity("useful life must be at least one year")
	}
	purchaseDate, err := utils.ParseDay(req.PurchaseDate)
	if err != nil {
		return nil, utils.BadRequest("invalid purchase date")
	}

	depreciationStart := purchaseDate
	if req.DepreciationStartDate != "" {
		depreciationStart, err = utils.ParseDay(req.DepreciationStartDate)
		if err != nil {
			return nil, utils.BadRequest("invalid depreciation start date")
		}
	}

	method := req.DepreciationMethod
	if method == "" {
		method = models.DepreciationStraightLine
	}
	if method != models.DepreciationStraightLine {
		return nil, utils.UnprocessableEntity("unsupported depreciation method")
	}

	status := req.Status
	if status == "" {
		status = models.FixedStatusInUse
	}
	switch status {
	case models.FixedStatusInUse, models.FixedStatusIdle, models.FixedStatusMaintenance,
		models.FixedStatusDisposed, models.FixedStatusRent, models.FixedStatusSell:
	default:
		return nil, utils.UnprocessableEntity("unknown asset status")
	}

	asset := &models.FixedAsset{
		UserID:                userID,
		CategoryID:            req.CategoryID,
		ProjectID:             req.ProjectID,
		Name:                  req.Name,
		OriginalValue:         req.OriginalValue,
		ResidualRate:          req.ResidualRate,
		PurchaseDate:          purchaseDate,
		DepreciationStartDate: depreciationStart,
		UsefulLifeYears:       req.UsefulLifeYears,
		DepreciationMethod:    method,
		Status:                status,
		RentPrice:             req.RentPrice,
		RentDeposit:           req.RentDeposit,
		RentDueDay:            req.RentDueDay,
		TenantName:            req.TenantName,
		TenantPhone:           req.TenantPhone,
	}

	if req.DisposeDate != "" {
		disposeDate, err := utils.ParseDay(req.DisposeDate)
		if err != nil {
			return nil, utils.BadRequest("invalid dispose date")
		}
		asset.DisposeDate = &disposeDate
	}
	if req.RentStartDate != "" {
		rentStart, err := utils.ParseDay(req.RentStartDate)
		if err != nil {
			return nil, utils.BadRequest("invalid rent start date")
		}
		asset.RentStartDate = &rentStart
	}
	if req.RentEndDate != "" {
		rentEnd, err := utils.ParseDay(req.RentEndDate)
		if err != nil {
			return nil, utils.BadRequest("invalid rent end date")
		}
		asset.RentEndDate = &rentEnd
	}
	if status == models.FixedStatusRent {
		if asset.RentPrice == nil || *asset.RentPrice <= 0 {
			return nil, utils.UnprocessableEntity("rented assets need a positive rent price")
		}
		if asset.RentDueDay != nil && (*asset.RentDueDay < 1 || *asset.RentDueDay > 28) {
			return nil, utils.UnprocessableEntity("rent due day must fall within 1-28")
		}
	}
	return asset, nil
}

func (c *Controller) fixedAssetResponse(asset *models.FixedAssetWithCategory, today time.Time) schemas.FixedAssetResponse {
	result := c.Depreciation.Calculate(services.DepreciationInput{
		OriginalValue:   asset.OriginalValue,
		ResidualRate:    asset.ResidualRate,
		UsefulLifeYears: asset.UsefulLifeYears,
		PurchaseDate:    asset.PurchaseDate,
	}, today)

	response := schemas.FixedAssetResponse{
		ID:                    asset.ID,
		Name:                  asset.Name,
		CategoryID:            asset.CategoryID,
		CategoryName:          asset.CategoryName,
		CategoryIcon:          utils.GetCategoryIcon(asset.CategoryIcon),
		ProjectID:             asset.ProjectID,
		PurchaseDate:          formatDay(asset.PurchaseDate),
		DepreciationStartDate: formatDay(asset.DepreciationStartDate),
		UsefulLifeYears:       asset.UsefulLifeYears,
		DepreciationMethod:    asset.DepreciationMethod,
		Status:                asset.Status,
		DisposeDate:           formatDayPtr(asset.DisposeDate),

		OriginalValue:           asset.OriginalValue,
		ResidualRate:            asset.ResidualRate,
		ResidualValue:           result.ResidualValue,
		CurrentValue:            result.CurrentValue,
		AccumulatedDepreciation: result.AccumulatedDepreciation,
		MonthlyDepreciation:     result.MonthlyDepreciation,
		AnnualDepreciation:      result.AnnualDepreciation,
		DepreciationProgressPct: result.ProgressPct,
		EndOfLife:               formatDay(result.EndOfLife),
	}

	if asset.Status == models.FixedStatusRent {
		rent := &schemas.RentInfo{
			Price:       asset.RentPrice,
			Deposit:     asset.RentDeposit,
			StartDate:   formatDayPtr(asset.RentStartDate),
			EndDate:     formatDayPtr(asset.RentEndDate),
			DueDay:      asset.RentDueDay,
			TenantName:  asset.TenantName,
			TenantPhone: asset.TenantPhone,
		}
		if projection, ok := c.Rent.NextDueDate(&asset.FixedAsset, today); ok {
			daysUntil := projection.DaysUntil
			rent.NextDueDate = formatDay(projection.DueDate)
			rent.DaysUntilDue = &daysUntil
			rent.DueUrgency = string(projection.Urgency)
			rent.DueLabel = projection.Label
			rent.DueColor = projection.Color
		}
		response.Rent = rent
	}
	return response
}
