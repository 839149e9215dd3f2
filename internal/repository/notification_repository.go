package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

// NotificationRepository manages the append-only notification rows.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository constructs repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (user_id, title, message, type, related_item_id, related_claim_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.RelatedItemID,
		notification.RelatedClaimID,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	const query = `
        SELECT id, user_id, title, message, type, related_item_id, related_claim_id, created_at
        FROM notifications WHERE user_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.RelatedItemID,
			&n.RelatedClaimID,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}
