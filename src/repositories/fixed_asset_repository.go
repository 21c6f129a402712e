package repositories

import (
	"context"
	"errors"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FixedAssetRepository interface {
	GetAllByUser(ctx context.Context, userID int) ([]models.FixedAssetWithCategory, error)
	GetAllRented(ctx context.Context, userID int) ([]models.FixedAssetWithCategory, error)
	GetByID(ctx context.Context, userID, id int) (*models.FixedAssetWithCategory, error)
	Create(ctx context.Context, asset *models.FixedAsset) error
	Update(ctx context.Context, asset *models.FixedAsset) error
	SoftDelete(ctx context.Context, userID, id int) error
}

type fixedAssetRepo struct {
	db *pgxpool.Pool
}

func NewFixedAssetRepository(db *pgxpool.Pool) FixedAssetRepository {
	return &fixedAssetRepo{db: db}
}

const fixedAssetSelect = `
	SELECT a.id, a.user_id, a.category_id, a.project_id, a.name, a.original_value,
	       a.residual_rate, a.purchase_date, a.depreciation_start_date, a.useful_life_years,
	       a.depreciation_method, a.status, a.dispose_date, a.rent_price, a.rent_deposit,
	       a.rent_start_date, a.rent_end_date, a.rent_due_day, a.tenant_name, a.tenant_phone,
	       a.created_at, c.name AS category_name, c.icon AS category_icon
	FROM fixed_assets a
	JOIN categories c ON c.id = a.category_id`

func scanFixedAsset(row pgx.Row) (*models.FixedAssetWithCategory, error) {
	var asset models.FixedAssetWithCategory
	err := row.Scan(&asset.ID, &asset.UserID, &asset.CategoryID, &asset.ProjectID, &asset.Name,
		&asset.OriginalValue, &asset.ResidualRate, &asset.PurchaseDate, &asset.DepreciationStartDate,
		&asset.UsefulLifeYears, &asset.DepreciationMethod, &asset.Status, &asset.DisposeDate,
		&asset.RentPrice, &asset.RentDeposit, &asset.RentStartDate, &asset.RentEndDate,
		&asset.RentDueDay, &asset.TenantName, &asset.TenantPhone, &asset.CreatedAt,
		&asset.CategoryName, &asset.CategoryIcon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *fixedAssetRepo) collect(rows pgx.Rows) ([]models.FixedAssetWithCategory, error) {
	defer rows.Close()
	var assets []models.FixedAssetWithCategory
	for rows.Next() {
		asset, err := scanFixedAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

func (r *fixedAssetRepo) GetAllByUser(ctx context.Context, userID int) ([]models.FixedAssetWithCategory, error) {
	rows, err := r.db.Query(ctx,
		fixedAssetSelect+` WHERE a.user_id = $1 AND NOT a.deleted ORDER BY a.purchase_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *fixedAssetRepo) GetAllRented(ctx context.Context, userID int) ([]models.FixedAssetWithCategory, error) {
	rows, err := r.db.Query(ctx,
		fixedAssetSelect+` WHERE a.user_id = $1 AND NOT a.deleted AND a.status = 'rent'
		 ORDER BY a.rent_due_day`, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *fixedAssetRepo) GetByID(ctx context.Context, userID, id int) (*models.FixedAssetWithCategory, error) {
	return scanFixedAsset(r.db.QueryRow(ctx,
		fixedAssetSelect+` WHERE a.id = $1 AND a.user_id = $2 AND NOT a.deleted`, id, userID))
}

func (r *fixedAssetRepo) Create(ctx context.Context, asset *models.FixedAsset) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO fixed_assets (user_id, category_id, project_id, name, original_value,
		   residual_rate, purchase_date, depreciation_start_date, useful_life_years,
		   depreciation_method, status, dispose_date, rent_price, rent_deposit,
		   rent_start_date, rent_end_date, rent_due_day, tenant_name, tenant_phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 RETURNING id, created_at`,
		asset.UserID, asset.CategoryID, asset.ProjectID, asset.Name, asset.OriginalValue,
		asset.ResidualRate, asset.PurchaseDate, asset.DepreciationStartDate, asset.UsefulLifeYears,
		asset.DepreciationMethod, asset.Status, asset.DisposeDate, asset.RentPrice, asset.RentDeposit,
		asset.RentStartDate, asset.RentEndDate, asset.RentDueDay, asset.TenantName, asset.TenantPhone,
	).Scan(&asset.ID, &asset.CreatedAt)
}

func (r *fixedAssetRepo) Update(ctx context.Context, asset *models.FixedAsset) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE fixed_assets SET category_id = $1, project_id = $2, name = $3, original_value = $4,
		   residual_rate = $5, purchase_date = $6, depreciation_start_date = $7, useful_life_years = $8,
		   depreciation_method = $9, status = $10, dispose_date = $11, rent_price = $12,
		   rent_deposit = $13, rent_start_date = $14, rent_end_date = $15, rent_due_day = $16,
		   tenant_name = $17, tenant_phone = $18
		 WHERE id = $19 AND user_id = $20 AND NOT deleted`,
		asset.CategoryID, asset.ProjectID, asset.Name, asset.OriginalValue,
		asset.ResidualRate, asset.PurchaseDate, asset.DepreciationStartDate, asset.UsefulLifeYears,
		asset.DepreciationMethod, asset.Status, asset.DisposeDate, asset.RentPrice,
		asset.RentDeposit, asset.RentStartDate, asset.RentEndDate, asset.RentDueDay,
		asset.TenantName, asset.TenantPhone, asset.ID, asset.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *fixedAssetRepo) SoftDelete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE fixed_assets SET deleted = TRUE, deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
