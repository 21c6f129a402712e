package repositories

import (
	"context"
	"errors"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by repositories when a row does not exist or is
// soft-deleted.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByOpenID(ctx context.Context, openID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, username, password_hash, nickname, avatar_url, wechat_open_id, created_at`

func (r *userRepo) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Nickname, &user.AvatarURL, &user.WeChatOpenID, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND NOT deleted`, id))
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 AND NOT deleted`, username))
}

func (r *userRepo) GetByOpenID(ctx context.Context, openID string) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE wechat_open_id = $1 AND NOT deleted`, openID))
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, nickname, avatar_url, wechat_open_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		user.Username, user.PasswordHash, user.Nickname, user.AvatarURL, user.WeChatOpenID,
	).Scan(&user.ID, &user.CreatedAt)
}
