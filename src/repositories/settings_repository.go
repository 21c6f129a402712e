package repositories

import (
	"context"
	"errors"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository interface {
	GetNotificationSetting(ctx context.Context, userID int) (*models.NotificationSetting, error)
	UpsertNotificationSetting(ctx context.Context, setting *models.NotificationSetting) error
	GetPreference(ctx context.Context, userID int) (*models.Preference, error)
	UpsertPreference(ctx context.Context, preference *models.Preference) error
}

type settingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetNotificationSetting(ctx context.Context, userID int) (*models.NotificationSetting, error) {
	var setting models.NotificationSetting
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, expiring_enabled, expiring_days, rent_due_enabled, rent_due_days, updated_at
		 FROM notification_settings WHERE user_id = $1`, userID).
		Scan(&setting.ID, &setting.UserID, &setting.ExpiringEnabled, &setting.ExpiringDays,
			&setting.RentDueEnabled, &setting.RentDueDays, &setting.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepo) UpsertNotificationSetting(ctx context.Context, setting *models.NotificationSetting) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO notification_settings (user_id, expiring_enabled, expiring_days, rent_due_enabled, rent_due_days, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   expiring_enabled = EXCLUDED.expiring_enabled,
		   expiring_days = EXCLUDED.expiring_days,
		   rent_due_enabled = EXCLUDED.rent_due_enabled,
		   rent_due_days = EXCLUDED.rent_due_days,
		   updated_at = NOW()
		 RETURNING id, updated_at`,
		setting.UserID, setting.ExpiringEnabled, setting.ExpiringDays,
		setting.RentDueEnabled, setting.RentDueDays,
	).Scan(&setting.ID, &setting.UpdatedAt)
}

func (r *settingsRepo) GetPreference(ctx context.Context, userID int) (*models.Preference, error) {
	var preference models.Preference
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, currency_symbol, theme, hide_amounts, updated_at
		 FROM preferences WHERE user_id = $1`, userID).
		Scan(&preference.ID, &preference.UserID, &preference.CurrencySymbol,
			&preference.Theme, &preference.HideAmounts, &preference.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *settingsRepo) UpsertPreference(ctx context.Context, preference *models.Preference) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO preferences (user_id, currency_symbol, theme, hide_amounts, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   currency_symbol = EXCLUDED.currency_symbol,
		   theme = EXCLUDED.theme,
		   hide_amounts = EXCLUDED.hide_amounts,
		   updated_at = NOW()
		 RETURNING id, updated_at`,
		preference.UserID, preference.CurrencySymbol, preference.Theme, preference.HideAmounts,
	).Scan(&preference.ID, &preference.UpdatedAt)
}
