package repositories

import (
	"context"
	"errors"
	"time"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VirtualAssetRepository interface {
	GetAllByUser(ctx context.Context, userID int) ([]models.VirtualAssetWithCategory, error)
	GetByID(ctx context.Context, userID, id int) (*models.VirtualAssetWithCategory, error)
	GetExpiring(ctx context.Context, userID int, from, to time.Time) ([]models.VirtualAssetWithCategory, error)
	Create(ctx context.Context, asset *models.VirtualAsset) error
	Update(ctx context.Context, asset *models.VirtualAsset) error
	SoftDelete(ctx context.Context, userID, id int) error
}

type virtualAssetRepo struct {
	db *pgxpool.Pool
}

func NewVirtualAssetRepository(db *pgxpool.Pool) VirtualAssetRepository {
	return &virtualAssetRepo{db: db}
}

const virtualAssetSelect = `
	SELECT a.id, a.user_id, a.category_id, a.project_id, a.name, a.total_amount,
	       a.start_date, a.end_date, a.description, a.account_username, a.account_password,
	       a.created_at, c.name AS category_name, c.icon AS category_icon
	FROM virtual_assets a
	JOIN categories c ON c.id = a.category_id`

func scanVirtualAsset(row pgx.Row) (*models.VirtualAssetWithCategory, error) {
	var asset models.VirtualAssetWithCategory
	err := row.Scan(&asset.ID, &asset.UserID, &asset.CategoryID, &asset.ProjectID, &asset.Name,
		&asset.TotalAmount, &asset.StartDate, &asset.EndDate, &asset.Description,
		&asset.AccountUsername, &asset.AccountPassword, &asset.CreatedAt,
		&asset.CategoryName, &asset.CategoryIcon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *virtualAssetRepo) collect(rows pgx.Rows) ([]models.VirtualAssetWithCategory, error) {
	defer rows.Close()
	var assets []models.VirtualAssetWithCategory
	for rows.Next() {
		asset, err := scanVirtualAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

func (r *virtualAssetRepo) GetAllByUser(ctx context.Context, userID int) ([]models.VirtualAssetWithCategory, error) {
	rows, err := r.db.Query(ctx,
		virtualAssetSelect+` WHERE a.user_id = $1 AND NOT a.deleted ORDER BY a.end_date`, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *virtualAssetRepo) GetByID(ctx context.Context, userID, id int) (*models.VirtualAssetWithCategory, error) {
	return scanVirtualAsset(r.db.QueryRow(ctx,
		virtualAssetSelect+` WHERE a.id = $1 AND a.user_id = $2 AND NOT a.deleted`, id, userID))
}

// GetExpiring lists assets whose end date falls inside [from, to].
func (r *virtualAssetRepo) GetExpiring(ctx context.Context, userID int, from, to time.Time) ([]models.VirtualAssetWithCategory, error) {
	rows, err := r.db.Query(ctx,
		virtualAssetSelect+` WHERE a.user_id = $1 AND NOT a.deleted
		 AND a.end_date >= $2 AND a.end_date <= $3 ORDER BY a.end_date`, userID, from, to)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *virtualAssetRepo) Create(ctx context.Context, asset *models.VirtualAsset) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO virtual_assets (user_id, category_id, project_id, name, total_amount,
		   start_date, end_date, description, account_username, account_password)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		asset.UserID, asset.CategoryID, asset.ProjectID, asset.Name, asset.TotalAmount,
		asset.StartDate, asset.EndDate, asset.Description, asset.AccountUsername, asset.AccountPassword,
	).Scan(&asset.ID, &asset.CreatedAt)
}

func (r *virtualAssetRepo) Update(ctx context.Context, asset *models.VirtualAsset) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE virtual_assets SET category_id = $1, project_id = $2, name = $3, total_amount = $4,
		   start_date = $5, end_date = $6, description = $7, account_username = $8, account_password = $9
		 WHERE id = $10 AND user_id = $11 AND NOT deleted`,
		asset.CategoryID, asset.ProjectID, asset.Name, asset.TotalAmount,
		asset.StartDate, asset.EndDate, asset.Description, asset.AccountUsername, asset.AccountPassword,
		asset.ID, asset.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *virtualAssetRepo) SoftDelete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE virtual_assets SET deleted = TRUE, deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
