package controllers

import (
	"context"
	"errors"

	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/schemas"
	"timevalue/src/utils"
)

func (c *Controller) GetAllProjects(ctx context.Context, userID int) ([]schemas.ProjectResponse, error) {
	projects, err := c.Projects.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, schemas.ProjectResponse{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
			Color:       project.Color,
		})
	}
	return responses, nil
}

func (c *Controller) CreateProject(ctx context.Context, userID int, req schemas.ProjectRequest) (*schemas.IDResponse, error) {
	if req.Name == "" {
		return nil, utils.BadRequest("name is required")
	}
	project := &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if err := c.Projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return &schemas.IDResponse{ID: project.ID}, nil
}

func (c *Controller) UpdateProject(ctx context.Context, userID, id int, req schemas.ProjectRequest) error {
	if req.Name == "" {
		return utils.BadRequest("name is required")
	}
	err := c.Projects.Update(ctx, &models.Project{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("project not found")
	}
	return err
}

func (c *Controller) DeleteProject(ctx context.Context, userID, id int) error {
	err := c.Projects.SoftDelete(ctx, userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NotFound("project not found")
	}
	return err
}
