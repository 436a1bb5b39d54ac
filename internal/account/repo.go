package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/agpcoach/agp/internal/accesscodes"
	"github.com/agpcoach/agp/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create redeems the access code and creates the user and their profile.
// Nothing is written unless all three succeed.
func (r *Repo) Create(ctx context.Context, acc NewAccount) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("rollback signup tx: %s", rbErr)
			}
		}
	}()

	if err := accesscodes.Redeem(ctx, tx, acc.AccessCode, acc.CreatedAt); err != nil {
		return fmt.Errorf("redeem access code: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO app_user (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4);`,
		acc.UserID, acc.Email, acc.PasswordHash, acc.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO profile (user_id, first_name, signup_date, updated_at) VALUES ($1, $2, $3, $4);`,
		acc.UserID, acc.FirstName, acc.SignupDate.Time(), acc.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *Repo) Credentials(ctx context.Context, email string) (*Credentials, error) {
	var c Credentials
	err := r.db.QueryRow(
		ctx,
		`SELECT id, password_hash FROM app_user WHERE email = $1;`,
		email,
	).Scan(&c.UserID, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &c, nil
}
