package services

import (
	"context"
	"testing"

	"timevalue/src/config"
	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/schemas"

	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (r *memoryUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryUserRepo) GetByOpenID(_ context.Context, openID string) (*models.User, error) {
	for _, user := range r.users {
		if user.WeChatOpenID != nil && *user.WeChatOpenID == openID {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenHours: 1, BCryptCost: 4}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(newMemoryUserRepo(), testAuthConfig())

	registered, err := service.Register(ctx, schemas.RegisterRequest{
		Username: "alice",
		Password: "hunter22",
		Nickname: "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Alice", registered.UserInfo.Nickname)

	loggedIn, err := service.Login(ctx, schemas.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserInfo.ID, loggedIn.UserInfo.ID)

	_, err = service.Login(ctx, schemas.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, schemas.LoginRequest{Username: "nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(newMemoryUserRepo(), testAuthConfig())

	_, err := service.Register(ctx, schemas.RegisterRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	_, err = service.Register(ctx, schemas.RegisterRequest{Username: "alice", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginWithOpenIDCreatesAccountOnce(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo()
	service := NewAuthService(repo, testAuthConfig())

	first, err := service.LoginWithOpenID(ctx, "openid-abc", "小王", "http://img/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "小王", first.UserInfo.Nickname)

	// Second login with a different nickname reuses the account and keeps
	// the stored profile.
	second, err := service.LoginWithOpenID(ctx, "openid-abc", "改名了", "")
	require.NoError(t, err)
	assert.Equal(t, first.UserInfo.ID, second.UserInfo.ID)
	assert.Equal(t, "小王", second.UserInfo.Nickname)
	assert.Len(t, repo.users, 1)
}

func TestIssuedTokenCarriesUserID(t *testing.T) {
	service := NewAuthService(newMemoryUserRepo(), testAuthConfig())

	response, err := service.IssueToken(&models.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(service.TokenAuth(), response.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
}
