package models

import "time"

type Expense struct {
	ID          int        `db:"id"`
	AssetID     int        `db:"asset_id"`
	UserID      int        `db:"user_id"`
	Amount      float64    `db:"amount"`
	ExpenseDate time.Time  `db:"expense_date"`
	ExpenseType string     `db:"expense_type"`
	Note        string     `db:"note"`
	CreatedAt   time.Time  `db:"created_at"`
	Deleted     bool       `db:"deleted"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
