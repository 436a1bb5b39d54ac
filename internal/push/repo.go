package push

import (
	"context"

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

// Upsert stores the subscription; an endpoint already registered is moved
// to the given user with fresh keys.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, s Subscription) error {
	_, err := r.db.Exec(
		ctx,
		`
			INSERT INTO push_subscription (endpoint, user_id, p256dh, auth, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (endpoint) DO UPDATE
			SET user_id = EXCLUDED.user_id, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth;`,
		s.Endpoint, userID, s.P256dh, s.Auth, s.CreatedAt,
	)
	return err
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, endpoint string) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM push_subscription WHERE endpoint = $1 AND user_id = $2;`,
		endpoint, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}
