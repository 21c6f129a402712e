package controllers

import (
	"context"
	"errors"

	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/schemas"
	"timevalue/src/utils"
)

func (c *Controller) GetAllCategories(ctx context.Context, userID int, assetKind string) ([]schemas.CategoryResponse, error) {
	if assetKind != "" && assetKind != utils.AssetKindVirtual && assetKind != utils.AssetKindFixed {
		return nil, utils.BadRequest("unknown asset kind")
	}
	categories, err := c.Categories.GetAllByUser(ctx, userID, assetKind)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, categoryResponse(&category))
	}
	return responses, nil
}

func (c *Controller) CreateCategory(ctx context.Context, userID int, req schemas.CategoryRequest) (*schemas.IDResponse, error) {
	category, err := categoryFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := c.Categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return &schemas.IDResponse{ID: category.ID}, nil
}

func (c *Controller) UpdateCategory(ctx context.Context, userID, id int, req schemas.CategoryRequest) error {
	category, err := categoryFromRequest(userID, req)
	if err != nil {
		return err
	}
	category.ID = id
	err = c.Categories.Update(ctx, category)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("category not found")
	}
	return err
}

func (c *Controller) DeleteCategory(ctx context.Context, userID, id int) error {
	err := c.Categories.SoftDelete(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("category not found")
	}
	return err
}

func categoryFromRequest(userID int, req schemas.CategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, utils.BadRequest("name is required")
	}
	if req.AssetKind != utils.AssetKindVirtual && req.AssetKind != utils.AssetKindFixed {
		return nil, utils.BadRequest("unknown asset kind")
	}
	return &models.Category{
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		AssetKind: req.AssetKind,
		SortOrder: req.SortOrder,
	}, nil
}

func categoryResponse(category *models.Category) schemas.CategoryResponse {
	return schemas.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Icon:      category.Icon,
		Emoji:     utils.GetCategoryIcon(category.Icon),
		AssetKind: category.AssetKind,
		SortOrder: category.SortOrder,
	}
}
