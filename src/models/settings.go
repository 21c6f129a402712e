package models

import "time"

type NotificationSetting struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	ExpiringEnabled bool      `db:"expiring_enabled"`
	ExpiringDays    int       `db:"expiring_days"`
	RentDueEnabled  bool      `db:"rent_due_enabled"`
	RentDueDays     int       `db:"rent_due_days"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Preference struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	CurrencySymbol string    `db:"currency_symbol"`
	Theme          string    `db:"theme"`
	HideAmounts    bool      `db:"hide_amounts"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Notification struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	Kind      string     `db:"kind"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	AssetID   *int       `db:"asset_id"`
	ReadAt    *time.Time `db:"read_at"`
	CreatedAt time.Time  `db:"created_at"`
}

const (
	NotificationKindExpiring = "expiring"
	NotificationKindRentDue  = "rent_due"
)
