package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-clinic/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

const notificationColumns = `
	id, user_id, type, title, message, data::text,
	is_read, read_at, created_at`

func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Notification) error {
	data, err := notifications.EncodePayload(n.Payload)
	if err != nil {
		return err
	}
	var nullData sql.NullString
	if data != "" {
		nullData = sql.NullString{String: data, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO notifications (
			id, user_id, type, title, message, data,
			is_read, read_at, created_at
		) VALUES ($1,$2,$3,$4,$5,$6::jsonb,$7,$8,$9)
	`,
		n.ID,
		n.UserID,
		string(n.Type),
		n.Title,
		n.Message,
		nullData,
		n.IsRead,
		toNullTime(n.ReadAt),
		n.CreatedAt,
	)
	return err
}

func (r *NotificationsRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return notifications.Notification{}, notifications.ErrNotFound
	}

	n, err := scanNotification(r.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return notifications.Notification{}, notifications.ErrNotFound
	}
	return n, err
}

func (r *NotificationsRepo) ListByUser(ctx context.Context, userID string, f notifications.ListFilter) ([]notifications.Notification, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`)
	args := []any{userID}

	if f.UnreadOnly {
		sb.WriteString(" AND is_read = FALSE")
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead solo toca filas no leídas; si ya estaba leída no es error.
func (r *NotificationsRepo) MarkRead(ctx context.Context, id string, at time.Time) error {
	if !validID(id) {
		return notifications.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = $2
		WHERE id = $1 AND is_read = FALSE
	`, id, at)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}
	return nil
}

func (r *NotificationsRepo) MarkAllRead(ctx context.Context, userID string, at time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = $2
		WHERE user_id = $1 AND is_read = FALSE
	`, userID, at)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res), nil
}

func (r *NotificationsRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE
	`, userID).Scan(&n)
	return n, err
}

func (r *NotificationsRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return notifications.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return notifications.ErrNotFound
	}
	return nil
}

func (r *NotificationsRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res), nil
}

func scanNotification(s scanner) (notifications.Notification, error) {
	var n notifications.Notification
	var typ string
	var data sql.NullString
	var readAt sql.NullTime
	if err := s.Scan(
		&n.ID,
		&n.UserID,
		&typ,
		&n.Title,
		&n.Message,
		&data,
		&n.IsRead,
		&readAt,
		&n.CreatedAt,
	); err != nil {
		return notifications.Notification{}, err
	}

	n.Type = notifications.Type(typ)
	n.ReadAt = fromNullTime(readAt)
	p, err := notifications.DecodePayload(n.Type, data.String)
	if err != nil {
		return notifications.Notification{}, err
	}
	n.Payload = p
	return n, nil
}
