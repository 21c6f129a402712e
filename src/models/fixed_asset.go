package models

import "time"

const (
	FixedStatusInUse       = "in_use"
	FixedStatusIdle        = "idle"
	FixedStatusMaintenance = "maintenance"
	FixedStatusDisposed    = "disposed"
	FixedStatusRent        = "rent"
	FixedStatusSell        = "sell"
)

const DepreciationStraightLine = "straight_line"

type FixedAsset struct {
	ID                    int        `db:"id"`
	UserID                int        `db:"user_id"`
	CategoryID            int        `db:"category_id"`
	ProjectID             *int       `db:"project_id"`
	Name                  string     `db:"name"`
	OriginalValue         float64    `db:"original_value"`
	ResidualRate          float64    `db:"residual_rate"`
	PurchaseDate          time.Time  `db:"purchase_date"`
	DepreciationStartDate time.Time  `db:"depreciation_start_date"`
	UsefulLifeYears       int        `db:"useful_life_years"`
	DepreciationMethod    string     `db:"depreciation_method"`
	Status                string     `db:"status"`
	DisposeDate           *time.Time `db:"dispose_date"`
	RentPrice             *float64   `db:"rent_price"`
	RentDeposit           *float64   `db:"rent_deposit"`
	RentStartDate         *time.Time `db:"rent_start_date"`
	RentEndDate           *time.Time `db:"rent_end_date"`
	RentDueDay            *int       `db:"rent_due_day"`
	TenantName            *string    `db:"tenant_name"`
	TenantPhone           *string    `db:"tenant_phone"`
	CreatedAt             time.Time  `db:"created_at"`
	Deleted               bool       `db:"deleted"`
	DeletedAt             *time.Time `db:"deleted_at"`
}

type FixedAssetWithCategory struct {
	FixedAsset
	CategoryName string `db:"category_name"`
	CategoryIcon string `db:"category_icon"`
}
