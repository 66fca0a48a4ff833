package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const notificationColumns = `id, created_at, user_id, message, is_read`

type NotificationRepository struct {
	db uow.DBTX
}

func NewNotificationRepository(db uow.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (n *NotificationRepository) Create(
	ctx context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	row := n.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, message) VALUES ($1, $2)
		RETURNING `+notificationColumns,
		args.UserID, args.Message,
	)
	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "creating notification")
	}
	return notification, nil
}

// GetByUserID возвращает уведомления юзера, новые сверху.
func (n *NotificationRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := n.db.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting notifications of user %d", userID)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		notification, scanErr := scanNotification(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting notifications of user %d", userID)
		}
		notifications = append(notifications, *notification)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting notifications of user %d", userID)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным. userID участвует в условии, чтобы юзер
// не мог пометить чужое уведомление.
func (n *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	row := n.db.QueryRow(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING `+notificationColumns,
		id, userID,
	)
	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "marking notification %d as read", id)
	}
	return notification, nil
}

func (n *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	if _, err := n.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID); err != nil {
		return convertErr(err, "marking notifications of user %d as read", userID)
	}
	return nil
}

// ExistsUnread сообщает, есть ли у юзера непрочитанное уведомление с таким же текстом.
// Нужен чекеру ежедневных наград, чтобы не спамить одинаковыми напоминаниями.
func (n *NotificationRepository) ExistsUnread(ctx context.Context, userID int64, message string) (bool, error) {
	row := n.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications WHERE user_id = $1 AND message = $2 AND NOT is_read
		)`,
		userID, message,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, convertErr(err, "checking unread notification of user %d", userID)
	}
	return exists, nil
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var notification domain.Notification
	err := row.Scan(
		&notification.ID,
		&notification.CreatedAt,
		&notification.UserID,
		&notification.Message,
		&notification.IsRead,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &notification, nil
}
