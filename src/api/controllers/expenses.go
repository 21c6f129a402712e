package controllers

import (
	"context"
	"errors"

	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/schemas"
	"timevalue/src/utils"
)

func (c *Controller) GetAssetExpenses(ctx context.Context, userID, assetID int) ([]schemas.ExpenseResponse, error) {
	// Fail early when the asset is not the caller's.
	if _, err := c.FixedAssets.GetByID(ctx, userID, assetID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound("asset not found")
		}
		return nil, err
	}

	expenses, err := c.Expenses.GetAllByAsset(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, schemas.ExpenseResponse{
			ID:          expense.ID,
			AssetID:     expense.AssetID,
			Amount:      expense.Amount,
			ExpenseDate: formatDay(expense.ExpenseDate),
			ExpenseType: expense.ExpenseType,
			Note:        expense.Note,
		})
	}
	return responses, nil
}

func (c *Controller) CreateExpense(ctx context.Context, userID, assetID int, req schemas.ExpenseRequest) (*schemas.IDResponse, error) {
	if req.Amount <= 0 {
		return nil, utils.BadRequest("amount must be positive")
	}
	expenseDate, err := utils.ParseDay(req.ExpenseDate)
	if err != nil {
		return nil, utils.BadRequest("invalid expense date")
	}
	if _, err := c.FixedAssets.GetByID(ctx, userID, assetID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound("asset not found")
		}
		return nil, err
	}

	expense := &models.Expense{
		AssetID:     assetID,
		UserID:      userID,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		ExpenseType: req.ExpenseType,
		Note:        req.Note,
	}
	if err := c.Expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return &schemas.IDResponse{ID: expense.ID}, nil
}

func (c *Controller) DeleteExpense(ctx context.Context, userID, id int) error {
	err := c.Expenses.SoftDelete(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("expense not found")
	}
	return err
}
