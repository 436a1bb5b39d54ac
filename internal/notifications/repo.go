package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID uuid.UUID, n Notification) (*Notification, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO notification (user_id, title, body, read, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		userID, n.Title, n.Body, n.Read, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, title, body, read, created_at
			FROM notification
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repo) MarkRead(ctx context.Context, userID uuid.UUID, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE notification SET read = TRUE WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE notification SET read = TRUE WHERE user_id = $1 AND NOT read;`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM notification WHERE user_id = $1 AND NOT read;`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteReadOlderThan purges notifications the user already read.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM notification WHERE read AND created_at < $1;`,
		before,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
