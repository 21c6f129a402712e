package repositories

import (
	"context"
	"errors"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	GetAllByUser(ctx context.Context, userID int, assetKind string) ([]models.Category, error)
	GetByID(ctx context.Context, userID, id int) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	SoftDelete(ctx context.Context, userID, id int) error
}

type categoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) GetAllByUser(ctx context.Context, userID int, assetKind string) ([]models.Category, error) {
	query := `SELECT id, user_id, name, icon, asset_kind, sort_order, created_at
	          FROM categories WHERE user_id = $1 AND NOT deleted`
	args := []interface{}{userID}
	if assetKind != "" {
		query += ` AND asset_kind = $2`
		args = append(args, assetKind)
	}
	query += ` ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Icon,
			&category.AssetKind, &category.SortOrder, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) GetByID(ctx context.Context, userID, id int) (*models.Category, error) {
	var category models.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, icon, asset_kind, sort_order, created_at
		 FROM categories WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID).
		Scan(&category.ID, &category.UserID, &category.Name, &category.Icon,
			&category.AssetKind, &category.SortOrder, &category.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categories (user_id, name, icon, asset_kind, sort_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		category.UserID, category.Name, category.Icon, category.AssetKind, category.SortOrder,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, icon = $2, asset_kind = $3, sort_order = $4
		 WHERE id = $5 AND user_id = $6 AND NOT deleted`,
		category.Name, category.Icon, category.AssetKind, category.SortOrder, category.ID, category.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepo) SoftDelete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET deleted = TRUE, deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
