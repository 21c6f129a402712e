package models

import "time"

type Category struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	Name      string     `db:"name"`
	Icon      string     `db:"icon"`
	AssetKind string     `db:"asset_kind"`
	SortOrder int        `db:"sort_order"`
	CreatedAt time.Time  `db:"created_at"`
	Deleted   bool       `db:"deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
}
