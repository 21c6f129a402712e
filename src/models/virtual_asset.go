package models

import "time"

// Virtual asset status values, computed from today's date against the asset's
// end date. They are never persisted.
const (
	VirtualStatusActive   = "active"
	VirtualStatusExpiring = "expiring"
	VirtualStatusExpired  = "expired"
)

type VirtualAsset struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	CategoryID      int        `db:"category_id"`
	ProjectID       *int       `db:"project_id"`
	Name            string     `db:"name"`
	TotalAmount     float64    `db:"total_amount"`
	StartDate       time.Time  `db:"start_date"`
	EndDate         time.Time  `db:"end_date"`
	Description     string     `db:"description"`
	AccountUsername string     `db:"account_username"`
	AccountPassword string     `db:"account_password"`
	CreatedAt       time.Time  `db:"created_at"`
	Deleted         bool       `db:"deleted"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type VirtualAssetWithCategory struct {
	VirtualAsset
	CategoryName string `db:"category_name"`
	CategoryIcon string `db:"category_icon"`
}
