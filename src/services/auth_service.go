package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timevalue/src/config"
	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/schemas"

	"github.com/go-chi/jwtauth"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
)

type AuthServiceI interface {
	Register(ctx context.Context, req schemas.RegisterRequest) (*schemas.TokenResponse, error)
	Login(ctx context.Context, req schemas.LoginRequest) (*schemas.TokenResponse, error)
	LoginWithOpenID(ctx context.Context, openID, nickname, avatarURL string) (*schemas.TokenResponse, error)
	IssueToken(user *models.User) (*schemas.TokenResponse, error)
	TokenAuth() *jwtauth.JWTAuth
}

type AuthService struct {
	users      repositories.UserRepository
	tokenAuth  *jwtauth.JWTAuth
	tokenHours int
	bcryptCost int
}

func NewAuthService(users repositories.UserRepository, cfg config.AuthConfig) *AuthService {
	cost := cfg.BCryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hours := cfg.TokenHours
	if hours <= 0 {
		hours = 72
	}
	return &AuthService{
		users:      users,
		tokenAuth:  jwtauth.New("HS256", []byte(cfg.JWTSecret), nil),
		tokenHours: hours,
		bcryptCost: cost,
	}
}

func (s *AuthService) TokenAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *AuthService) Register(ctx context.Context, req schemas.RegisterRequest) (*schemas.TokenResponse, error) {
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}
	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Nickname:     nickname,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.IssueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req schemas.LoginRequest) (*schemas.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.IssueToken(user)
}

// LoginWithOpenID finds or creates the account bound to a WeChat open id.
// Profile fields refresh from WeChat only at first creation.
func (s *AuthService) LoginWithOpenID(ctx context.Context, openID, nickname, avatarURL string) (*schemas.TokenResponse, error) {
	user, err := s.users.GetByOpenID(ctx, openID)
	if errors.Is(err, repositories.ErrNotFound) {
		if nickname == "" {
			nickname = "微信用户"
		}
		user = &models.User{
			Username:     "wx_" + openID,
			Nickname:     nickname,
			AvatarURL:    avatarURL,
			WeChatOpenID: &openID,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s.IssueToken(user)
}

func (s *AuthService) IssueToken(user *models.User) (*schemas.TokenResponse, error) {
	claims := map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}
	jwtauth.SetExpiryIn(claims, time.Duration(s.tokenHours)*time.Hour)
	jwtauth.SetIssuedNow(claims)
	_, tokenString, err := s.tokenAuth.Encode(claims)
	if err != nil {
		return nil, fmt.Errorf("encoding token: %w", err)
	}
	return &schemas.TokenResponse{
		Token: tokenString,
		UserInfo: schemas.UserInfo{
			ID:        user.ID,
			Username:  user.Username,
			Nickname:  user.Nickname,
			AvatarURL: user.AvatarURL,
		},
	}, nil
}
