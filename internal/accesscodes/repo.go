package accesscodes

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Execer is satisfied by both the pool and a pgx.Tx, so a code can be
// redeemed inside a wider transaction.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, code AccessCode) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO access_code (code, max_uses, used_count, expires_at, created_at) VALUES ($1, $2, $3, $4, $5);`,
		code.Code, code.MaxUses, code.UsedCount, code.ExpiresAt, code.CreatedAt,
	)
	return err
}

func (r *Repo) List(ctx context.Context) ([]AccessCode, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				code, max_uses, used_count, expires_at, created_at
			FROM access_code
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []AccessCode
	for rows.Next() {
		var c AccessCode
		if err := rows.Scan(&c.Code, &c.MaxUses, &c.UsedCount, &c.ExpiresAt, &c.CreatedAt); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}

// Redeem consumes one use of code. The check and the increment happen in a
// single statement, so concurrent sign-ups cannot overuse a code.
func Redeem(ctx context.Context, db Execer, code string, now time.Time) error {
	tag, err := db.Exec(
		ctx,
		`
			UPDATE access_code SET used_count = used_count + 1
			WHERE code = $1
				AND used_count < max_uses
				AND (expires_at IS NULL OR expires_at > $2);`,
		Normalize(code), now,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccessCodeInvalid
	}
	return nil
}
