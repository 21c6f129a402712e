package models

import "time"

type User struct {
	ID           int        `db:"id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Nickname     string     `db:"nickname"`
	AvatarURL    string     `db:"avatar_url"`
	WeChatOpenID *string    `db:"wechat_open_id"`
	CreatedAt    time.Time  `db:"created_at"`
	Deleted      bool       `db:"deleted"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
