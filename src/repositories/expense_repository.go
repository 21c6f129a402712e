package repositories

import (
	"context"
	"errors"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository interface {
	GetAllByAsset(ctx context.Context, userID, assetID int) ([]models.Expense, error)
	GetByID(ctx context.Context, userID, id int) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) error
	SoftDelete(ctx context.Context, userID, id int) error
}

type expenseRepo struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) GetAllByAsset(ctx context.Context, userID, assetID int) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, asset_id, user_id, amount, expense_date, expense_type, note, created_at
		 FROM expenses WHERE asset_id = $1 AND user_id = $2 AND NOT deleted
		 ORDER BY expense_date DESC`, assetID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.AssetID, &expense.UserID, &expense.Amount,
			&expense.ExpenseDate, &expense.ExpenseType, &expense.Note, &expense.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *expenseRepo) GetByID(ctx context.Context, userID, id int) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.QueryRow(ctx,
		`SELECT id, asset_id, user_id, amount, expense_date, expense_type, note, created_at
		 FROM expenses WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID).
		Scan(&expense.ID, &expense.AssetID, &expense.UserID, &expense.Amount,
			&expense.ExpenseDate, &expense.ExpenseType, &expense.Note, &expense.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO expenses (asset_id, user_id, amount, expense_date, expense_type, note)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		expense.AssetID, expense.UserID, expense.Amount, expense.ExpenseDate, expense.ExpenseType, expense.Note,
	).Scan(&expense.ID, &expense.CreatedAt)
}

func (r *expenseRepo) Update(ctx context.Context, expense *models.Expense) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE expenses SET amount = $1, expense_date = $2, expense_type = $3, note = $4
		 WHERE id = $5 AND user_id = $6 AND NOT deleted`,
		expense.Amount, expense.ExpenseDate, expense.ExpenseType, expense.Note, expense.ID, expense.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *expenseRepo) SoftDelete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE expenses SET deleted = TRUE, deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
