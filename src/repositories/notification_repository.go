package repositories

import (
	"context"
	"time"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository interface {
	GetAllByUser(ctx context.Context, userID, limit int) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	MarkRead(ctx context.Context, userID, id int) error
	ExistsRecent(ctx context.Context, userID int, kind string, assetID int, since time.Time) (bool, error)
	AllUserIDs(ctx context.Context) ([]int, error)
}

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) GetAllByUser(ctx context.Context, userID, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, title, body, asset_id, read_at, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(&notification.ID, &notification.UserID, &notification.Kind,
			&notification.Title, &notification.Body, &notification.AssetID,
			&notification.ReadAt, &notification.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

func (r *notificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, kind, title, body, asset_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		notification.UserID, notification.Kind, notification.Title, notification.Body, notification.AssetID,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND read_at IS NULL`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsRecent reports whether an equivalent notification was already written
// since the given time. The worker uses it to avoid renotifying on every scan.
func (r *notificationRepo) ExistsRecent(ctx context.Context, userID int, kind string, assetID int, since time.Time) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications
		 WHERE user_id = $1 AND kind = $2 AND asset_id = $3 AND created_at >= $4`,
		userID, kind, assetID, since).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepo) AllUserIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users WHERE NOT deleted`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
