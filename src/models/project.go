package models

import "time"

type Project struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Color       string     `db:"color"`
	CreatedAt   time.Time  `db:"created_at"`
	Deleted     bool       `db:"deleted"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
