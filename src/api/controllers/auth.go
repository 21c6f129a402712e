package controllers

import (
	"context"
	"errors"
	"strings"

	"timevalue/src/repositories"
	"timevalue/src/schemas"
	"timevalue/src/services"
	"timevalue/src/utils"
)

func (c *Controller) Register(ctx context.Context, req schemas.RegisterRequest) (*schemas.TokenResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < 6 {
		return nil, utils.BadRequest("username and a password of at least 6 characters are required")
	}

	token, err := c.Auth.Register(ctx, req)
	if errors.Is(err, services.ErrUsernameTaken) {
		return nil, utils.UnprocessableEntity(err.Error())
	}
	return token, err
}

func (c *Controller) Login(ctx context.Context, req schemas.LoginRequest) (*schemas.TokenResponse, error) {
	token, err := c.Auth.Login(ctx, req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return nil, utils.Unauthorized(err.Error())
	}
	return token, err
}

func (c *Controller) GetUserInfo(ctx context.Context, userID int) (*schemas.UserInfo, error) {
	user, err := c.Users.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &schemas.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		AvatarURL: user.AvatarURL,
	}, nil
}
